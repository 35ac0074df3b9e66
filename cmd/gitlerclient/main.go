// Package main implements simple grpc client for gitler grpc server.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	appGrpc "github.com/m-zajac/gitler/internal/api/grpc"
	"github.com/spf13/pflag"
	"google.golang.org/grpc"
)

var (
	serverAddr = pflag.StringP("server", "s", "localhost:9090", "The server address in the format of host:port")
	login      = pflag.StringP("user", "u", "", "Show details of user with given login instead of users list")
)

func main() {
	pflag.Parse()

	conn, err := grpc.Dial(*serverAddr, grpc.WithInsecure())
	if err != nil {
		log.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()
	client := appGrpc.NewScreensClient(conn)

	if *login == "" {
		printUsers(client)
		return
	}
	printUserDetail(client, *login)
}

func printUsers(client *appGrpc.ScreensClient) {
	resp, err := client.Users(context.Background(), &appGrpc.UsersRequest{})
	if err != nil {
		log.Fatalf("server response error: %v", err)
	}
	if resp.Error != nil {
		printError(resp.Error)
	}

	fmt.Print("        ID | Login\n")
	fmt.Print("------------------------\n")
	for _, u := range resp.Users {
		fmt.Printf("%10d | %s\n", u.ID, u.Login)
	}
}

func printUserDetail(client *appGrpc.ScreensClient, login string) {
	watcher, err := client.WatchUserDetail(context.Background(), &appGrpc.UserDetailRequest{Login: login})
	if err != nil {
		log.Fatalf("server response error: %v", err)
	}

	var last *appGrpc.UserDetailReply
	for {
		reply, err := watcher.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("server response error: %v", err)
		}
		switch {
		case reply.IsLoadingUserDetails:
			fmt.Println("loading user details...")
		case reply.IsLoadingRepositories:
			fmt.Println("loading repositories...")
		}
		last = reply
	}
	if last == nil {
		return
	}
	if last.Error != nil {
		printError(last.Error)
	}

	if u := last.UserDetails; u != nil {
		fmt.Printf("\n%s (%s)\n", u.Login, u.Name.OrElse("-"))
		fmt.Printf("followers: %d, following: %d\n\n", u.Followers.OrElse(0), u.Following.OrElse(0))
	}

	fmt.Print("     Stars | Language   | Name\n")
	fmt.Print("----------------------------------------\n")
	for _, r := range last.Repositories {
		fmt.Printf("%10d | %-10s | %s\n", r.StargazersCount, r.Language.OrElse("-"), r.Name)
		if d, ok := r.Description.Get(); ok {
			fmt.Printf("%10s | %-10s | %s\n", "", "", d)
		}
		fmt.Printf("%10s | %-10s | %s\n", "", "", r.HTMLURL)
	}
}

func printError(e *appGrpc.Error) {
	fmt.Fprintf(os.Stderr, "%s\n%s\n\n", e.Message, e.RecoverySuggestion)
}
