// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.3.0
// - protoc             (unknown)
// source: proto/fincast/v1/fincast.proto

package fincastv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.32.0 or later.
const _ = grpc.SupportPackageIsVersion7

const (
	FincastService_AnalyzeTrend_FullMethodName              = "/fincast.v1.FincastService/AnalyzeTrend"
	FincastService_ClassifyTransaction_FullMethodName       = "/fincast.v1.FincastService/ClassifyTransaction"
	FincastService_LearnClassification_FullMethodName       = "/fincast.v1.FincastService/LearnClassification"
	FincastService_DetectAnomaly_FullMethodName             = "/fincast.v1.FincastService/DetectAnomaly"
	FincastService_ForecastCashFlow_FullMethodName          = "/fincast.v1.FincastService/ForecastCashFlow"
	FincastService_PredictExpenses_FullMethodName           = "/fincast.v1.FincastService/PredictExpenses"
	FincastService_SimulateSavingsRate_FullMethodName       = "/fincast.v1.FincastService/SimulateSavingsRate"
	FincastService_SimulateCategoryReduction_FullMethodName = "/fincast.v1.FincastService/SimulateCategoryReduction"
	FincastService_SimulateIncomeIncrease_FullMethodName    = "/fincast.v1.FincastService/SimulateIncomeIncrease"
	FincastService_SimulateGoalTimeline_FullMethodName      = "/fincast.v1.FincastService/SimulateGoalTimeline"
	FincastService_SimulateRetirement_FullMethodName        = "/fincast.v1.FincastService/SimulateRetirement"
	FincastService_CompareScenarios_FullMethodName          = "/fincast.v1.FincastService/CompareScenarios"
	FincastService_GetHealthScore_FullMethodName            = "/fincast.v1.FincastService/GetHealthScore"
)

// FincastServiceClient is the client API for FincastService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type FincastServiceClient interface {
	AnalyzeTrend(ctx context.Context, in *AnalyzeTrendRequest, opts ...grpc.CallOption) (*AnalyzeTrendResponse, error)
	ClassifyTransaction(ctx context.Context, in *ClassifyTransactionRequest, opts ...grpc.CallOption) (*ClassifyTransactionResponse, error)
	LearnClassification(ctx context.Context, in *LearnClassificationRequest, opts ...grpc.CallOption) (*LearnClassificationResponse, error)
	DetectAnomaly(ctx context.Context, in *DetectAnomalyRequest, opts ...grpc.CallOption) (*DetectAnomalyResponse, error)
	ForecastCashFlow(ctx context.Context, in *ForecastCashFlowRequest, opts ...grpc.CallOption) (*ForecastCashFlowResponse, error)
	PredictExpenses(ctx context.Context, in *PredictExpensesRequest, opts ...grpc.CallOption) (*PredictExpensesResponse, error)
	SimulateSavingsRate(ctx context.Context, in *SimulateSavingsRateRequest, opts ...grpc.CallOption) (*SimulateSavingsRateResponse, error)
	SimulateCategoryReduction(ctx context.Context, in *SimulateCategoryReductionRequest, opts ...grpc.CallOption) (*SimulateCategoryReductionResponse, error)
	SimulateIncomeIncrease(ctx context.Context, in *SimulateIncomeIncreaseRequest, opts ...grpc.CallOption) (*SimulateIncomeIncreaseResponse, error)
	SimulateGoalTimeline(ctx context.Context, in *SimulateGoalTimelineRequest, opts ...grpc.CallOption) (*SimulateGoalTimelineResponse, error)
	SimulateRetirement(ctx context.Context, in *SimulateRetirementRequest, opts ...grpc.CallOption) (*SimulateRetirementResponse, error)
	CompareScenarios(ctx context.Context, in *CompareScenariosRequest, opts ...grpc.CallOption) (*CompareScenariosResponse, error)
	GetHealthScore(ctx context.Context, in *GetHealthScoreRequest, opts ...grpc.CallOption) (*GetHealthScoreResponse, error)
}

type fincastServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFincastServiceClient(cc grpc.ClientConnInterface) FincastServiceClient {
	return &fincastServiceClient{cc}
}

func (c *fincastServiceClient) AnalyzeTrend(ctx context.Context, in *AnalyzeTrendRequest, opts ...grpc.CallOption) (*AnalyzeTrendResponse, error) {
	out := new(AnalyzeTrendResponse)
	err := c.cc.Invoke(ctx, FincastService_AnalyzeTrend_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fincastServiceClient) ClassifyTransaction(ctx context.Context, in *ClassifyTransactionRequest, opts ...grpc.CallOption) (*ClassifyTransactionResponse, error) {
	out := new(ClassifyTransactionResponse)
	err := c.cc.Invoke(ctx, FincastService_ClassifyTransaction_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fincastServiceClient) LearnClassification(ctx context.Context, in *LearnClassificationRequest, opts ...grpc.CallOption) (*LearnClassificationResponse, error) {
	out := new(LearnClassificationResponse)
	err := c.cc.Invoke(ctx, FincastService_LearnClassification_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fincastServiceClient) DetectAnomaly(ctx context.Context, in *DetectAnomalyRequest, opts ...grpc.CallOption) (*DetectAnomalyResponse, error) {
	out := new(DetectAnomalyResponse)
	err := c.cc.Invoke(ctx, FincastService_DetectAnomaly_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fincastServiceClient) ForecastCashFlow(ctx context.Context, in *ForecastCashFlowRequest, opts ...grpc.CallOption) (*ForecastCashFlowResponse, error) {
	out := new(ForecastCashFlowResponse)
	err := c.cc.Invoke(ctx, FincastService_ForecastCashFlow_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fincastServiceClient) PredictExpenses(ctx context.Context, in *PredictExpensesRequest, opts ...grpc.CallOption) (*PredictExpensesResponse, error) {
	out := new(PredictExpensesResponse)
	err := c.cc.Invoke(ctx, FincastService_PredictExpenses_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fincastServiceClient) SimulateSavingsRate(ctx context.Context, in *SimulateSavingsRateRequest, opts ...grpc.CallOption) (*SimulateSavingsRateResponse, error) {
	out := new(SimulateSavingsRateResponse)
	err := c.cc.Invoke(ctx, FincastService_SimulateSavingsRate_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fincastServiceClient) SimulateCategoryReduction(ctx context.Context, in *SimulateCategoryReductionRequest, opts ...grpc.CallOption) (*SimulateCategoryReductionResponse, error) {
	out := new(SimulateCategoryReductionResponse)
	err := c.cc.Invoke(ctx, FincastService_SimulateCategoryReduction_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fincastServiceClient) SimulateIncomeIncrease(ctx context.Context, in *SimulateIncomeIncreaseRequest, opts ...grpc.CallOption) (*SimulateIncomeIncreaseResponse, error) {
	out := new(SimulateIncomeIncreaseResponse)
	err := c.cc.Invoke(ctx, FincastService_SimulateIncomeIncrease_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fincastServiceClient) SimulateGoalTimeline(ctx context.Context, in *SimulateGoalTimelineRequest, opts ...grpc.CallOption) (*SimulateGoalTimelineResponse, error) {
	out := new(SimulateGoalTimelineResponse)
	err := c.cc.Invoke(ctx, FincastService_SimulateGoalTimeline_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fincastServiceClient) SimulateRetirement(ctx context.Context, in *SimulateRetirementRequest, opts ...grpc.CallOption) (*SimulateRetirementResponse, error) {
	out := new(SimulateRetirementResponse)
	err := c.cc.Invoke(ctx, FincastService_SimulateRetirement_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fincastServiceClient) CompareScenarios(ctx context.Context, in *CompareScenariosRequest, opts ...grpc.CallOption) (*CompareScenariosResponse, error) {
	out := new(CompareScenariosResponse)
	err := c.cc.Invoke(ctx, FincastService_CompareScenarios_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fincastServiceClient) GetHealthScore(ctx context.Context, in *GetHealthScoreRequest, opts ...grpc.CallOption) (*GetHealthScoreResponse, error) {
	out := new(GetHealthScoreResponse)
	err := c.cc.Invoke(ctx, FincastService_GetHealthScore_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FincastServiceServer is the server API for FincastService service.
// All implementations must embed UnimplementedFincastServiceServer
// for forward compatibility
type FincastServiceServer interface {
	AnalyzeTrend(context.Context, *AnalyzeTrendRequest) (*AnalyzeTrendResponse, error)
	ClassifyTransaction(context.Context, *ClassifyTransactionRequest) (*ClassifyTransactionResponse, error)
	LearnClassification(context.Context, *LearnClassificationRequest) (*LearnClassificationResponse, error)
	DetectAnomaly(context.Context, *DetectAnomalyRequest) (*DetectAnomalyResponse, error)
	ForecastCashFlow(context.Context, *ForecastCashFlowRequest) (*ForecastCashFlowResponse, error)
	PredictExpenses(context.Context, *PredictExpensesRequest) (*PredictExpensesResponse, error)
	SimulateSavingsRate(context.Context, *SimulateSavingsRateRequest) (*SimulateSavingsRateResponse, error)
	SimulateCategoryReduction(context.Context, *SimulateCategoryReductionRequest) (*SimulateCategoryReductionResponse, error)
	SimulateIncomeIncrease(context.Context, *SimulateIncomeIncreaseRequest) (*SimulateIncomeIncreaseResponse, error)
	SimulateGoalTimeline(context.Context, *SimulateGoalTimelineRequest) (*SimulateGoalTimelineResponse, error)
	SimulateRetirement(context.Context, *SimulateRetirementRequest) (*SimulateRetirementResponse, error)
	CompareScenarios(context.Context, *CompareScenariosRequest) (*CompareScenariosResponse, error)
	GetHealthScore(context.Context, *GetHealthScoreRequest) (*GetHealthScoreResponse, error)
	mustEmbedUnimplementedFincastServiceServer()
}

// UnimplementedFincastServiceServer must be embedded to have forward compatible implementations.
type UnimplementedFincastServiceServer struct {
}

func (UnimplementedFincastServiceServer) AnalyzeTrend(context.Context, *AnalyzeTrendRequest) (*AnalyzeTrendResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnalyzeTrend not implemented")
}
func (UnimplementedFincastServiceServer) ClassifyTransaction(context.Context, *ClassifyTransactionRequest) (*ClassifyTransactionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClassifyTransaction not implemented")
}
func (UnimplementedFincastServiceServer) LearnClassification(context.Context, *LearnClassificationRequest) (*LearnClassificationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LearnClassification not implemented")
}
func (UnimplementedFincastServiceServer) DetectAnomaly(context.Context, *DetectAnomalyRequest) (*DetectAnomalyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DetectAnomaly not implemented")
}
func (UnimplementedFincastServiceServer) ForecastCashFlow(context.Context, *ForecastCashFlowRequest) (*ForecastCashFlowResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ForecastCashFlow not implemented")
}
func (UnimplementedFincastServiceServer) PredictExpenses(context.Context, *PredictExpensesRequest) (*PredictExpensesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PredictExpenses not implemented")
}
func (UnimplementedFincastServiceServer) SimulateSavingsRate(context.Context, *SimulateSavingsRateRequest) (*SimulateSavingsRateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SimulateSavingsRate not implemented")
}
func (UnimplementedFincastServiceServer) SimulateCategoryReduction(context.Context, *SimulateCategoryReductionRequest) (*SimulateCategoryReductionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SimulateCategoryReduction not implemented")
}
func (UnimplementedFincastServiceServer) SimulateIncomeIncrease(context.Context, *SimulateIncomeIncreaseRequest) (*SimulateIncomeIncreaseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SimulateIncomeIncrease not implemented")
}
func (UnimplementedFincastServiceServer) SimulateGoalTimeline(context.Context, *SimulateGoalTimelineRequest) (*SimulateGoalTimelineResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SimulateGoalTimeline not implemented")
}
func (UnimplementedFincastServiceServer) SimulateRetirement(context.Context, *SimulateRetirementRequest) (*SimulateRetirementResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SimulateRetirement not implemented")
}
func (UnimplementedFincastServiceServer) CompareScenarios(context.Context, *CompareScenariosRequest) (*CompareScenariosResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompareScenarios not implemented")
}
func (UnimplementedFincastServiceServer) GetHealthScore(context.Context, *GetHealthScoreRequest) (*GetHealthScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetHealthScore not implemented")
}
func (UnimplementedFincastServiceServer) mustEmbedUnimplementedFincastServiceServer() {}

// UnsafeFincastServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to FincastServiceServer will
// result in compilation errors.
type UnsafeFincastServiceServer interface {
	mustEmbedUnimplementedFincastServiceServer()
}

func RegisterFincastServiceServer(s grpc.ServiceRegistrar, srv FincastServiceServer) {
	s.RegisterService(&FincastService_ServiceDesc, srv)
}

func _FincastService_AnalyzeTrend_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeTrendRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FincastServiceServer).AnalyzeTrend(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FincastService_AnalyzeTrend_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FincastServiceServer).AnalyzeTrend(ctx, req.(*AnalyzeTrendRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FincastService_ClassifyTransaction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClassifyTransactionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FincastServiceServer).ClassifyTransaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FincastService_ClassifyTransaction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FincastServiceServer).ClassifyTransaction(ctx, req.(*ClassifyTransactionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FincastService_LearnClassification_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LearnClassificationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FincastServiceServer).LearnClassification(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FincastService_LearnClassification_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FincastServiceServer).LearnClassification(ctx, req.(*LearnClassificationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FincastService_DetectAnomaly_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DetectAnomalyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FincastServiceServer).DetectAnomaly(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FincastService_DetectAnomaly_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FincastServiceServer).DetectAnomaly(ctx, req.(*DetectAnomalyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FincastService_ForecastCashFlow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ForecastCashFlowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FincastServiceServer).ForecastCashFlow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FincastService_ForecastCashFlow_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FincastServiceServer).ForecastCashFlow(ctx, req.(*ForecastCashFlowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FincastService_PredictExpenses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PredictExpensesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FincastServiceServer).PredictExpenses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FincastService_PredictExpenses_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FincastServiceServer).PredictExpenses(ctx, req.(*PredictExpensesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FincastService_SimulateSavingsRate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SimulateSavingsRateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FincastServiceServer).SimulateSavingsRate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FincastService_SimulateSavingsRate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FincastServiceServer).SimulateSavingsRate(ctx, req.(*SimulateSavingsRateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FincastService_SimulateCategoryReduction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SimulateCategoryReductionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FincastServiceServer).SimulateCategoryReduction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FincastService_SimulateCategoryReduction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FincastServiceServer).SimulateCategoryReduction(ctx, req.(*SimulateCategoryReductionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FincastService_SimulateIncomeIncrease_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SimulateIncomeIncreaseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FincastServiceServer).SimulateIncomeIncrease(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FincastService_SimulateIncomeIncrease_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FincastServiceServer).SimulateIncomeIncrease(ctx, req.(*SimulateIncomeIncreaseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FincastService_SimulateGoalTimeline_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SimulateGoalTimelineRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FincastServiceServer).SimulateGoalTimeline(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FincastService_SimulateGoalTimeline_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FincastServiceServer).SimulateGoalTimeline(ctx, req.(*SimulateGoalTimelineRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FincastService_SimulateRetirement_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SimulateRetirementRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FincastServiceServer).SimulateRetirement(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FincastService_SimulateRetirement_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FincastServiceServer).SimulateRetirement(ctx, req.(*SimulateRetirementRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FincastService_CompareScenarios_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompareScenariosRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FincastServiceServer).CompareScenarios(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FincastService_CompareScenarios_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FincastServiceServer).CompareScenarios(ctx, req.(*CompareScenariosRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FincastService_GetHealthScore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetHealthScoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FincastServiceServer).GetHealthScore(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FincastService_GetHealthScore_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FincastServiceServer).GetHealthScore(ctx, req.(*GetHealthScoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FincastService_ServiceDesc is the grpc.ServiceDesc for FincastService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var FincastService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fincast.v1.FincastService",
	HandlerType: (*FincastServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AnalyzeTrend",
			Handler:    _FincastService_AnalyzeTrend_Handler,
		},
		{
			MethodName: "ClassifyTransaction",
			Handler:    _FincastService_ClassifyTransaction_Handler,
		},
		{
			MethodName: "LearnClassification",
			Handler:    _FincastService_LearnClassification_Handler,
		},
		{
			MethodName: "DetectAnomaly",
			Handler:    _FincastService_DetectAnomaly_Handler,
		},
		{
			MethodName: "ForecastCashFlow",
			Handler:    _FincastService_ForecastCashFlow_Handler,
		},
		{
			MethodName: "PredictExpenses",
			Handler:    _FincastService_PredictExpenses_Handler,
		},
		{
			MethodName: "SimulateSavingsRate",
			Handler:    _FincastService_SimulateSavingsRate_Handler,
		},
		{
			MethodName: "SimulateCategoryReduction",
			Handler:    _FincastService_SimulateCategoryReduction_Handler,
		},
		{
			MethodName: "SimulateIncomeIncrease",
			Handler:    _FincastService_SimulateIncomeIncrease_Handler,
		},
		{
			MethodName: "SimulateGoalTimeline",
			Handler:    _FincastService_SimulateGoalTimeline_Handler,
		},
		{
			MethodName: "SimulateRetirement",
			Handler:    _FincastService_SimulateRetirement_Handler,
		},
		{
			MethodName: "CompareScenarios",
			Handler:    _FincastService_CompareScenarios_Handler,
		},
		{
			MethodName: "GetHealthScore",
			Handler:    _FincastService_GetHealthScore_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/fincast/v1/fincast.proto",
}
