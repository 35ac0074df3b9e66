package grpc

import (
	"context"

	"github.com/m-zajac/gitler/internal/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Navigator returns screens.
type Navigator interface {
	Users() *app.UsersScreen
	UserDetail(login string) (*app.UserDetailScreen, error)
}

// Service implements ScreensServer, loading screens returned by Navigator.
type Service struct {
	navigator Navigator
}

var _ ScreensServer = &Service{}

// NewService returns new Service instance
func NewService(navigator Navigator) *Service {
	return &Service{
		navigator: navigator,
	}
}

// Users loads users list screen and returns its state.
func (s *Service) Users(ctx context.Context, r *UsersRequest) (*UsersReply, error) {
	screen := s.navigator.Users()
	if !screen.Load(ctx) {
		return nil, status.Error(codes.DeadlineExceeded, ctx.Err().Error())
	}

	return newUsersReply(screen.State()), nil
}

// WatchUserDetail sends current user detail screen state, then every state published while the screen loads.
// Returns when loading is finished.
func (s *Service) WatchUserDetail(r *UserDetailRequest, stream UserDetailStream) error {
	screen, err := s.navigator.UserDetail(r.Login)
	if err != nil {
		if app.IsInvalidRequestError(err) {
			return status.Error(codes.InvalidArgument, err.Error())
		}
		return status.Error(codes.Internal, err.Error())
	}

	ctx := stream.Context()
	updates := make(chan app.UserDetailState, 4)
	unsubscribe := screen.Subscribe(func(st app.UserDetailState) {
		select {
		case updates <- st:
		case <-ctx.Done():
		}
	})
	defer unsubscribe()

	if err := stream.Send(newUserDetailReply(screen.State())); err != nil {
		return err
	}

	loaded := make(chan bool, 1)
	go func() {
		loaded <- screen.Load(ctx)
	}()

	for {
		select {
		case st := <-updates:
			if err := stream.Send(newUserDetailReply(st)); err != nil {
				return err
			}
		case ok := <-loaded:
			if !ok {
				return ctx.Err()
			}
			// Load waits for the whole sequence, also one started by another request,
			// and the sequence publishes synchronously, so all its updates are queued by now.
			for len(updates) > 0 {
				if err := stream.Send(newUserDetailReply(<-updates)); err != nil {
					return err
				}
			}
			return nil
		}
	}
}
