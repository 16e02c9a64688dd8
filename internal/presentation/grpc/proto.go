package grpc

// proto.go holds the service descriptor for nutrition.v1.NutritionService.
// Messages travel as JSON, so the descriptor is written by hand instead of
// generated from a .proto file.

import (
	"context"
	"encoding/json"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/status"
)

// CodecName is the content subtype clients select with
// grpc.CallContentSubtype.
const CodecName = "json"

// PredictMethod is the full method name of NutritionService.Predict.
const PredictMethod = "/nutrition.v1.NutritionService/Predict"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return CodecName }

// NutritionServiceServer is the server API for NutritionService.
type NutritionServiceServer interface {
	Predict(context.Context, *PredictRequest) (*PredictResponse, error)
	mustEmbedUnimplementedNutritionServiceServer()
}

// UnimplementedNutritionServiceServer provides forward-compatible default implementations.
type UnimplementedNutritionServiceServer struct{}

func (UnimplementedNutritionServiceServer) Predict(context.Context, *PredictRequest) (*PredictResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Predict not implemented")
}
func (UnimplementedNutritionServiceServer) mustEmbedUnimplementedNutritionServiceServer() {}

// RegisterNutritionServiceServer registers the NutritionServiceServer with the gRPC server.
func RegisterNutritionServiceServer(s *grpclib.Server, srv NutritionServiceServer) {
	s.RegisterService(&_NutritionService_serviceDesc, srv)
}

var _NutritionService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "nutrition.v1.NutritionService",
	HandlerType: (*NutritionServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "Predict", Handler: _NutritionService_Predict_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _NutritionService_Predict_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(PredictRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NutritionServiceServer).Predict(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: PredictMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NutritionServiceServer).Predict(ctx, req.(*PredictRequest))
	}
	return interceptor(ctx, req, info, handler)
}

// NutritionServiceClient is the client API for NutritionService.
type NutritionServiceClient struct {
	cc grpclib.ClientConnInterface
}

// NewNutritionServiceClient wraps a connection. Calls always use the JSON codec.
func NewNutritionServiceClient(cc grpclib.ClientConnInterface) *NutritionServiceClient {
	return &NutritionServiceClient{cc: cc}
}

// Predict calls NutritionService.Predict.
func (c *NutritionServiceClient) Predict(ctx context.Context, in *PredictRequest, opts ...grpclib.CallOption) (*PredictResponse, error) {
	out := new(PredictResponse)
	opts = append([]grpclib.CallOption{grpclib.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, PredictMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
