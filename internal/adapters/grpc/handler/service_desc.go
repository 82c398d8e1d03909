package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// HumanResourceServiceName は gRPC 上のサービス名です。
const HumanResourceServiceName = "hr.v1.HumanResourceService"

// HumanResourceServiceServer は HumanResourceService のサーバー側インターフェースです。
type HumanResourceServiceServer interface {
	AddEmployee(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error)
	RemoveEmployee(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error)
	ReportHours(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error)
	ListEmployees(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetMonthlyReport(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// HumanResourceServiceDesc は HumanResourceService の grpc.ServiceDesc です。
var HumanResourceServiceDesc = grpc.ServiceDesc{
	ServiceName: HumanResourceServiceName,
	HandlerType: (*HumanResourceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AddEmployee", Handler: unaryHandler("AddEmployee", HumanResourceServiceServer.AddEmployee)},
		{MethodName: "RemoveEmployee", Handler: unaryHandler("RemoveEmployee", HumanResourceServiceServer.RemoveEmployee)},
		{MethodName: "ReportHours", Handler: unaryHandler("ReportHours", HumanResourceServiceServer.ReportHours)},
		{MethodName: "ListEmployees", Handler: unaryHandler("ListEmployees", HumanResourceServiceServer.ListEmployees)},
		{MethodName: "GetMonthlyReport", Handler: unaryHandler("GetMonthlyReport", HumanResourceServiceServer.GetMonthlyReport)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hr/v1/hr.proto",
}

// RegisterHumanResourceServiceServer は HumanResourceService を登録します。
func RegisterHumanResourceServiceServer(s grpc.ServiceRegistrar, srv HumanResourceServiceServer) {
	s.RegisterService(&HumanResourceServiceDesc, srv)
}

// FullMethodName は HumanResourceService のメソッドの完全名を返します。
func FullMethodName(method string) string {
	return "/" + HumanResourceServiceName + "/" + method
}

func unaryHandler[Resp any](method string, call func(HumanResourceServiceServer, context.Context, *structpb.Struct) (Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	fullMethod := FullMethodName(method)
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		server := srv.(HumanResourceServiceServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}
