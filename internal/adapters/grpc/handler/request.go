package handler

import (
	"math"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// DateTimeLayout はリクエスト・レスポンスで扱う日時の書式です。タイムゾーンは持ちません。
const DateTimeLayout = "2006-01-02T15:04:05"

func requireStruct(req *structpb.Struct) error {
	if req == nil {
		return status.Error(codes.InvalidArgument, "request is required")
	}
	return nil
}

func intField(req *structpb.Struct, name string) (int, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be a number", name)
	}
	f := n.NumberValue
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be an integer", name)
	}
	return int(f), nil
}

func timeField(req *structpb.Struct, name string) (time.Time, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "%s must be a string", name)
	}
	t, err := time.ParseInLocation(DateTimeLayout, s.StringValue, time.Local)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "%s must match %s", name, DateTimeLayout)
	}
	return t, nil
}
