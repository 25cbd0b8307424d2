// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: proto/teamv1/team.proto

package teamv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	TeamService_SayHello_FullMethodName                   = "/teamv1.TeamService/SayHello"
	TeamService_GetTeamByPerson_FullMethodName            = "/teamv1.TeamService/GetTeamByPerson"
	TeamService_GetMembersByPosition_FullMethodName       = "/teamv1.TeamService/GetMembersByPosition"
	TeamService_EstimatePositionsByPersons_FullMethodName = "/teamv1.TeamService/EstimatePositionsByPersons"
	TeamService_GetPersonsByTeam_FullMethodName           = "/teamv1.TeamService/GetPersonsByTeam"
)

// TeamServiceClient is the client API for TeamService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// TeamService exposes a read-only organizational roster through the four
// gRPC call patterns.
type TeamServiceClient interface {
	// Unary greeting: one formatted message for one member.
	SayHello(ctx context.Context, in *Member, opts ...grpc.CallOption) (*MessageResponse, error)
	// Unary lookup: the team a person belongs to. An unmatched person yields
	// an empty Team, not an error.
	GetTeamByPerson(ctx context.Context, in *Person, opts ...grpc.CallOption) (*Team, error)
	// Server-streaming: every member whose position equals the filter.
	GetMembersByPosition(ctx context.Context, in *Position, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Member], error)
	// Client-streaming: classify each inbound person's position and return a
	// single tally once the inbound stream completes.
	EstimatePositionsByPersons(ctx context.Context, opts ...grpc.CallOption) (grpc.ClientStreamingClient[Person, EstimatePosition], error)
	// Bidirectional: for every inbound team, the persons of that team are
	// emitted immediately into the outbound stream.
	GetPersonsByTeam(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[Team, Person], error)
}

type teamServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTeamServiceClient(cc grpc.ClientConnInterface) TeamServiceClient {
	return &teamServiceClient{cc}
}

func (c *teamServiceClient) SayHello(ctx context.Context, in *Member, opts ...grpc.CallOption) (*MessageResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MessageResponse)
	err := c.cc.Invoke(ctx, TeamService_SayHello_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *teamServiceClient) GetTeamByPerson(ctx context.Context, in *Person, opts ...grpc.CallOption) (*Team, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Team)
	err := c.cc.Invoke(ctx, TeamService_GetTeamByPerson_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *teamServiceClient) GetMembersByPosition(ctx context.Context, in *Position, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Member], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &TeamService_ServiceDesc.Streams[0], TeamService_GetMembersByPosition_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[Position, Member]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type TeamService_GetMembersByPositionClient = grpc.ServerStreamingClient[Member]

func (c *teamServiceClient) EstimatePositionsByPersons(ctx context.Context, opts ...grpc.CallOption) (grpc.ClientStreamingClient[Person, EstimatePosition], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &TeamService_ServiceDesc.Streams[1], TeamService_EstimatePositionsByPersons_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[Person, EstimatePosition]{ClientStream: stream}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type TeamService_EstimatePositionsByPersonsClient = grpc.ClientStreamingClient[Person, EstimatePosition]

func (c *teamServiceClient) GetPersonsByTeam(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[Team, Person], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &TeamService_ServiceDesc.Streams[2], TeamService_GetPersonsByTeam_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[Team, Person]{ClientStream: stream}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type TeamService_GetPersonsByTeamClient = grpc.BidiStreamingClient[Team, Person]

// TeamServiceServer is the server API for TeamService service.
// All implementations must embed UnimplementedTeamServiceServer
// for forward compatibility.
//
// TeamService exposes a read-only organizational roster through the four
// gRPC call patterns.
type TeamServiceServer interface {
	// Unary greeting: one formatted message for one member.
	SayHello(context.Context, *Member) (*MessageResponse, error)
	// Unary lookup: the team a person belongs to. An unmatched person yields
	// an empty Team, not an error.
	GetTeamByPerson(context.Context, *Person) (*Team, error)
	// Server-streaming: every member whose position equals the filter.
	GetMembersByPosition(*Position, grpc.ServerStreamingServer[Member]) error
	// Client-streaming: classify each inbound person's position and return a
	// single tally once the inbound stream completes.
	EstimatePositionsByPersons(grpc.ClientStreamingServer[Person, EstimatePosition]) error
	// Bidirectional: for every inbound team, the persons of that team are
	// emitted immediately into the outbound stream.
	GetPersonsByTeam(grpc.BidiStreamingServer[Team, Person]) error
	mustEmbedUnimplementedTeamServiceServer()
}

// UnimplementedTeamServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTeamServiceServer struct{}

func (UnimplementedTeamServiceServer) SayHello(context.Context, *Member) (*MessageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SayHello not implemented")
}
func (UnimplementedTeamServiceServer) GetTeamByPerson(context.Context, *Person) (*Team, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTeamByPerson not implemented")
}
func (UnimplementedTeamServiceServer) GetMembersByPosition(*Position, grpc.ServerStreamingServer[Member]) error {
	return status.Errorf(codes.Unimplemented, "method GetMembersByPosition not implemented")
}
func (UnimplementedTeamServiceServer) EstimatePositionsByPersons(grpc.ClientStreamingServer[Person, EstimatePosition]) error {
	return status.Errorf(codes.Unimplemented, "method EstimatePositionsByPersons not implemented")
}
func (UnimplementedTeamServiceServer) GetPersonsByTeam(grpc.BidiStreamingServer[Team, Person]) error {
	return status.Errorf(codes.Unimplemented, "method GetPersonsByTeam not implemented")
}
func (UnimplementedTeamServiceServer) mustEmbedUnimplementedTeamServiceServer() {}
func (UnimplementedTeamServiceServer) testEmbeddedByValue()                     {}

// UnsafeTeamServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TeamServiceServer will
// result in compilation errors.
type UnsafeTeamServiceServer interface {
	mustEmbedUnimplementedTeamServiceServer()
}

func RegisterTeamServiceServer(s grpc.ServiceRegistrar, srv TeamServiceServer) {
	// If the following call pancis, it indicates UnimplementedTeamServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TeamService_ServiceDesc, srv)
}

func _TeamService_SayHello_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Member)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TeamServiceServer).SayHello(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TeamService_SayHello_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TeamServiceServer).SayHello(ctx, req.(*Member))
	}
	return interceptor(ctx, in, info, handler)
}

func _TeamService_GetTeamByPerson_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Person)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TeamServiceServer).GetTeamByPerson(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TeamService_GetTeamByPerson_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TeamServiceServer).GetTeamByPerson(ctx, req.(*Person))
	}
	return interceptor(ctx, in, info, handler)
}

func _TeamService_GetMembersByPosition_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(Position)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(TeamServiceServer).GetMembersByPosition(m, &grpc.GenericServerStream[Position, Member]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type TeamService_GetMembersByPositionServer = grpc.ServerStreamingServer[Member]

func _TeamService_EstimatePositionsByPersons_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(TeamServiceServer).EstimatePositionsByPersons(&grpc.GenericServerStream[Person, EstimatePosition]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type TeamService_EstimatePositionsByPersonsServer = grpc.ClientStreamingServer[Person, EstimatePosition]

func _TeamService_GetPersonsByTeam_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(TeamServiceServer).GetPersonsByTeam(&grpc.GenericServerStream[Team, Person]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type TeamService_GetPersonsByTeamServer = grpc.BidiStreamingServer[Team, Person]

// TeamService_ServiceDesc is the grpc.ServiceDesc for TeamService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TeamService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "teamv1.TeamService",
	HandlerType: (*TeamServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SayHello",
			Handler:    _TeamService_SayHello_Handler,
		},
		{
			MethodName: "GetTeamByPerson",
			Handler:    _TeamService_GetTeamByPerson_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "GetMembersByPosition",
			Handler:       _TeamService_GetMembersByPosition_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "EstimatePositionsByPersons",
			Handler:       _TeamService_EstimatePositionsByPersons_Handler,
			ClientStreams: true,
		},
		{
			StreamName:    "GetPersonsByTeam",
			Handler:       _TeamService_GetPersonsByTeam_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "proto/teamv1/team.proto",
}
