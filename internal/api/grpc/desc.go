package grpc

import (
	"context"

	"google.golang.org/grpc"
)

const (
	serviceName           = "gitler.Screens"
	usersMethod           = "/gitler.Screens/Users"
	watchUserDetailMethod = "/gitler.Screens/WatchUserDetail"
)

// ScreensServer is the server API for screens service.
type ScreensServer interface {
	Users(context.Context, *UsersRequest) (*UsersReply, error)
	WatchUserDetail(*UserDetailRequest, UserDetailStream) error
}

// UserDetailStream sends user detail states to the client.
type UserDetailStream interface {
	Send(*UserDetailReply) error
	grpc.ServerStream
}

// RegisterScreensServer registers screens service in grpc server.
func RegisterScreensServer(s *grpc.Server, srv ScreensServer) {
	s.RegisterService(&screensServiceDesc, srv)
}

var screensServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ScreensServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Users",
			Handler:    usersHandler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchUserDetail",
			Handler:       watchUserDetailHandler,
			ServerStreams: true,
		},
	},
	Metadata: "gitler/screens",
}

func usersHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UsersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScreensServer).Users(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: usersMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScreensServer).Users(ctx, req.(*UsersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func watchUserDetailHandler(srv interface{}, stream grpc.ServerStream) error {
	in := new(UserDetailRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(ScreensServer).WatchUserDetail(in, &userDetailStream{stream})
}

type userDetailStream struct {
	grpc.ServerStream
}

func (s *userDetailStream) Send(m *UserDetailReply) error {
	return s.ServerStream.SendMsg(m)
}

// ScreensClient calls screens service.
type ScreensClient struct {
	cc *grpc.ClientConn
}

// NewScreensClient creates new ScreensClient instance.
func NewScreensClient(cc *grpc.ClientConn) *ScreensClient {
	return &ScreensClient{
		cc: cc,
	}
}

// Users returns users list screen state.
func (c *ScreensClient) Users(ctx context.Context, in *UsersRequest, opts ...grpc.CallOption) (*UsersReply, error) {
	out := new(UsersReply)
	if err := c.cc.Invoke(ctx, usersMethod, in, out, c.callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// UserDetailWatcher receives user detail states.
// Recv returns io.EOF when screen finished loading.
type UserDetailWatcher interface {
	Recv() (*UserDetailReply, error)
}

// WatchUserDetail opens stream of user detail screen states.
func (c *ScreensClient) WatchUserDetail(ctx context.Context, in *UserDetailRequest, opts ...grpc.CallOption) (UserDetailWatcher, error) {
	stream, err := c.cc.NewStream(ctx, &screensServiceDesc.Streams[0], watchUserDetailMethod, c.callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	if err := stream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := stream.CloseSend(); err != nil {
		return nil, err
	}
	return &userDetailWatcher{stream}, nil
}

func (c *ScreensClient) callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
}

type userDetailWatcher struct {
	grpc.ClientStream
}

func (w *userDetailWatcher) Recv() (*UserDetailReply, error) {
	m := new(UserDetailReply)
	if err := w.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}
