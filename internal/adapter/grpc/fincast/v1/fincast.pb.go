// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.35.2
// 	protoc        (unknown)
// source: proto/fincast/v1/fincast.proto

package fincastv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type TrendResult struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Direction          string  `protobuf:"bytes,1,opt,name=direction,proto3" json:"direction,omitempty"` // UP, DOWN or STABLE
	PercentageChange   float64 `protobuf:"fixed64,2,opt,name=percentage_change,json=percentageChange,proto3" json:"percentage_change,omitempty"`
	PredictedNextValue string  `protobuf:"bytes,3,opt,name=predicted_next_value,json=predictedNextValue,proto3" json:"predicted_next_value,omitempty"`
	Confidence         float64 `protobuf:"fixed64,4,opt,name=confidence,proto3" json:"confidence,omitempty"` // R-squared in [0,1]
}

func (x *TrendResult) Reset() {
	*x = TrendResult{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TrendResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TrendResult) ProtoMessage() {}

func (x *TrendResult) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TrendResult.ProtoReflect.Descriptor instead.
func (*TrendResult) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{0}
}

func (x *TrendResult) GetDirection() string {
	if x != nil {
		return x.Direction
	}
	return ""
}

func (x *TrendResult) GetPercentageChange() float64 {
	if x != nil {
		return x.PercentageChange
	}
	return 0
}

func (x *TrendResult) GetPredictedNextValue() string {
	if x != nil {
		return x.PredictedNextValue
	}
	return ""
}

func (x *TrendResult) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type AnalyzeTrendRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Label  string   `protobuf:"bytes,1,opt,name=label,proto3" json:"label,omitempty"`
	Values []string `protobuf:"bytes,2,rep,name=values,proto3" json:"values,omitempty"` // oldest first, decimal strings
}

func (x *AnalyzeTrendRequest) Reset() {
	*x = AnalyzeTrendRequest{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeTrendRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeTrendRequest) ProtoMessage() {}

func (x *AnalyzeTrendRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeTrendRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeTrendRequest) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{1}
}

func (x *AnalyzeTrendRequest) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *AnalyzeTrendRequest) GetValues() []string {
	if x != nil {
		return x.Values
	}
	return nil
}

type AnalyzeTrendResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Trend *TrendResult `protobuf:"bytes,1,opt,name=trend,proto3" json:"trend,omitempty"`
}

func (x *AnalyzeTrendResponse) Reset() {
	*x = AnalyzeTrendResponse{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeTrendResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeTrendResponse) ProtoMessage() {}

func (x *AnalyzeTrendResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeTrendResponse.ProtoReflect.Descriptor instead.
func (*AnalyzeTrendResponse) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{2}
}

func (x *AnalyzeTrendResponse) GetTrend() *TrendResult {
	if x != nil {
		return x.Trend
	}
	return nil
}

type ClassifyTransactionRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Description        string `protobuf:"bytes,1,opt,name=description,proto3" json:"description,omitempty"`
	Amount             string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`                                                     // signed decimal string
	ExplicitCategoryId string `protobuf:"bytes,3,opt,name=explicit_category_id,json=explicitCategoryId,proto3" json:"explicit_category_id,omitempty"` // optional
}

func (x *ClassifyTransactionRequest) Reset() {
	*x = ClassifyTransactionRequest{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClassifyTransactionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClassifyTransactionRequest) ProtoMessage() {}

func (x *ClassifyTransactionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClassifyTransactionRequest.ProtoReflect.Descriptor instead.
func (*ClassifyTransactionRequest) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{3}
}

func (x *ClassifyTransactionRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *ClassifyTransactionRequest) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *ClassifyTransactionRequest) GetExplicitCategoryId() string {
	if x != nil {
		return x.ExplicitCategoryId
	}
	return ""
}

type ClassificationSuggestion struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	CategoryId   string  `protobuf:"bytes,1,opt,name=category_id,json=categoryId,proto3" json:"category_id,omitempty"`
	CategoryName string  `protobuf:"bytes,2,opt,name=category_name,json=categoryName,proto3" json:"category_name,omitempty"`
	CategoryType string  `protobuf:"bytes,3,opt,name=category_type,json=categoryType,proto3" json:"category_type,omitempty"` // INCOME, EXPENSE or INVESTMENT
	Confidence   float64 `protobuf:"fixed64,4,opt,name=confidence,proto3" json:"confidence,omitempty"`                       // [0,100]
}

func (x *ClassificationSuggestion) Reset() {
	*x = ClassificationSuggestion{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClassificationSuggestion) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClassificationSuggestion) ProtoMessage() {}

func (x *ClassificationSuggestion) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClassificationSuggestion.ProtoReflect.Descriptor instead.
func (*ClassificationSuggestion) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{4}
}

func (x *ClassificationSuggestion) GetCategoryId() string {
	if x != nil {
		return x.CategoryId
	}
	return ""
}

func (x *ClassificationSuggestion) GetCategoryName() string {
	if x != nil {
		return x.CategoryName
	}
	return ""
}

func (x *ClassificationSuggestion) GetCategoryType() string {
	if x != nil {
		return x.CategoryType
	}
	return ""
}

func (x *ClassificationSuggestion) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type ClassifyTransactionResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Suggestions []*ClassificationSuggestion `protobuf:"bytes,1,rep,name=suggestions,proto3" json:"suggestions,omitempty"` // ranked, at most 3
}

func (x *ClassifyTransactionResponse) Reset() {
	*x = ClassifyTransactionResponse{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClassifyTransactionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClassifyTransactionResponse) ProtoMessage() {}

func (x *ClassifyTransactionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClassifyTransactionResponse.ProtoReflect.Descriptor instead.
func (*ClassifyTransactionResponse) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{5}
}

func (x *ClassifyTransactionResponse) GetSuggestions() []*ClassificationSuggestion {
	if x != nil {
		return x.Suggestions
	}
	return nil
}

type LearnClassificationRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Description string `protobuf:"bytes,1,opt,name=description,proto3" json:"description,omitempty"`
	Amount      string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
	CategoryId  string `protobuf:"bytes,3,opt,name=category_id,json=categoryId,proto3" json:"category_id,omitempty"`
	Source      string `protobuf:"bytes,4,opt,name=source,proto3" json:"source,omitempty"` // USER or IMPORT
}

func (x *LearnClassificationRequest) Reset() {
	*x = LearnClassificationRequest{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LearnClassificationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LearnClassificationRequest) ProtoMessage() {}

func (x *LearnClassificationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LearnClassificationRequest.ProtoReflect.Descriptor instead.
func (*LearnClassificationRequest) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{6}
}

func (x *LearnClassificationRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *LearnClassificationRequest) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *LearnClassificationRequest) GetCategoryId() string {
	if x != nil {
		return x.CategoryId
	}
	return ""
}

func (x *LearnClassificationRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type LearnClassificationResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *LearnClassificationResponse) Reset() {
	*x = LearnClassificationResponse{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LearnClassificationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LearnClassificationResponse) ProtoMessage() {}

func (x *LearnClassificationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LearnClassificationResponse.ProtoReflect.Descriptor instead.
func (*LearnClassificationResponse) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{7}
}

type DetectAnomalyRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	CategoryName string   `protobuf:"bytes,1,opt,name=category_name,json=categoryName,proto3" json:"category_name,omitempty"`
	History      []string `protobuf:"bytes,2,rep,name=history,proto3" json:"history,omitempty"` // decimal strings, oldest first
	NewAmount    string   `protobuf:"bytes,3,opt,name=new_amount,json=newAmount,proto3" json:"new_amount,omitempty"`
	Threshold    float64  `protobuf:"fixed64,4,opt,name=threshold,proto3" json:"threshold,omitempty"`                    // 0 = default
	MinSamples   int32    `protobuf:"varint,5,opt,name=min_samples,json=minSamples,proto3" json:"min_samples,omitempty"` // 0 = default
}

func (x *DetectAnomalyRequest) Reset() {
	*x = DetectAnomalyRequest{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DetectAnomalyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DetectAnomalyRequest) ProtoMessage() {}

func (x *DetectAnomalyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DetectAnomalyRequest.ProtoReflect.Descriptor instead.
func (*DetectAnomalyRequest) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{8}
}

func (x *DetectAnomalyRequest) GetCategoryName() string {
	if x != nil {
		return x.CategoryName
	}
	return ""
}

func (x *DetectAnomalyRequest) GetHistory() []string {
	if x != nil {
		return x.History
	}
	return nil
}

func (x *DetectAnomalyRequest) GetNewAmount() string {
	if x != nil {
		return x.NewAmount
	}
	return ""
}

func (x *DetectAnomalyRequest) GetThreshold() float64 {
	if x != nil {
		return x.Threshold
	}
	return 0
}

func (x *DetectAnomalyRequest) GetMinSamples() int32 {
	if x != nil {
		return x.MinSamples
	}
	return 0
}

type DetectAnomalyResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	IsAnomalous    bool    `protobuf:"varint,1,opt,name=is_anomalous,json=isAnomalous,proto3" json:"is_anomalous,omitempty"`
	Average        string  `protobuf:"bytes,2,opt,name=average,proto3" json:"average,omitempty"`
	SampleCount    int32   `protobuf:"varint,3,opt,name=sample_count,json=sampleCount,proto3" json:"sample_count,omitempty"`
	DeviationRatio float64 `protobuf:"fixed64,4,opt,name=deviation_ratio,json=deviationRatio,proto3" json:"deviation_ratio,omitempty"`
}

func (x *DetectAnomalyResponse) Reset() {
	*x = DetectAnomalyResponse{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DetectAnomalyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DetectAnomalyResponse) ProtoMessage() {}

func (x *DetectAnomalyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DetectAnomalyResponse.ProtoReflect.Descriptor instead.
func (*DetectAnomalyResponse) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{9}
}

func (x *DetectAnomalyResponse) GetIsAnomalous() bool {
	if x != nil {
		return x.IsAnomalous
	}
	return false
}

func (x *DetectAnomalyResponse) GetAverage() string {
	if x != nil {
		return x.Average
	}
	return ""
}

func (x *DetectAnomalyResponse) GetSampleCount() int32 {
	if x != nil {
		return x.SampleCount
	}
	return 0
}

func (x *DetectAnomalyResponse) GetDeviationRatio() float64 {
	if x != nil {
		return x.DeviationRatio
	}
	return 0
}

type ForecastCashFlowRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserId           string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	HistoricalMonths int32  `protobuf:"varint,2,opt,name=historical_months,json=historicalMonths,proto3" json:"historical_months,omitempty"` // 1-12
	ForecastMonths   int32  `protobuf:"varint,3,opt,name=forecast_months,json=forecastMonths,proto3" json:"forecast_months,omitempty"`       // 1-6
}

func (x *ForecastCashFlowRequest) Reset() {
	*x = ForecastCashFlowRequest{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ForecastCashFlowRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ForecastCashFlowRequest) ProtoMessage() {}

func (x *ForecastCashFlowRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ForecastCashFlowRequest.ProtoReflect.Descriptor instead.
func (*ForecastCashFlowRequest) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{10}
}

func (x *ForecastCashFlowRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ForecastCashFlowRequest) GetHistoricalMonths() int32 {
	if x != nil {
		return x.HistoricalMonths
	}
	return 0
}

func (x *ForecastCashFlowRequest) GetForecastMonths() int32 {
	if x != nil {
		return x.ForecastMonths
	}
	return 0
}

type ForecastPoint struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Month   string `protobuf:"bytes,1,opt,name=month,proto3" json:"month,omitempty"` // YYYY-MM
	Kind    string `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"`   // HISTORICAL or FORECAST
	Income  string `protobuf:"bytes,3,opt,name=income,proto3" json:"income,omitempty"`
	Expense string `protobuf:"bytes,4,opt,name=expense,proto3" json:"expense,omitempty"`
	Balance string `protobuf:"bytes,5,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (x *ForecastPoint) Reset() {
	*x = ForecastPoint{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ForecastPoint) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ForecastPoint) ProtoMessage() {}

func (x *ForecastPoint) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ForecastPoint.ProtoReflect.Descriptor instead.
func (*ForecastPoint) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{11}
}

func (x *ForecastPoint) GetMonth() string {
	if x != nil {
		return x.Month
	}
	return ""
}

func (x *ForecastPoint) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *ForecastPoint) GetIncome() string {
	if x != nil {
		return x.Income
	}
	return ""
}

func (x *ForecastPoint) GetExpense() string {
	if x != nil {
		return x.Expense
	}
	return ""
}

func (x *ForecastPoint) GetBalance() string {
	if x != nil {
		return x.Balance
	}
	return ""
}

type ForecastCashFlowResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Historical []*ForecastPoint `protobuf:"bytes,1,rep,name=historical,proto3" json:"historical,omitempty"`
	Forecasts  []*ForecastPoint `protobuf:"bytes,2,rep,name=forecasts,proto3" json:"forecasts,omitempty"`
	AvgIncome  string           `protobuf:"bytes,3,opt,name=avg_income,json=avgIncome,proto3" json:"avg_income,omitempty"`
	AvgExpense string           `protobuf:"bytes,4,opt,name=avg_expense,json=avgExpense,proto3" json:"avg_expense,omitempty"`
	AvgBalance string           `protobuf:"bytes,5,opt,name=avg_balance,json=avgBalance,proto3" json:"avg_balance,omitempty"`
}

func (x *ForecastCashFlowResponse) Reset() {
	*x = ForecastCashFlowResponse{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ForecastCashFlowResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ForecastCashFlowResponse) ProtoMessage() {}

func (x *ForecastCashFlowResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ForecastCashFlowResponse.ProtoReflect.Descriptor instead.
func (*ForecastCashFlowResponse) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{12}
}

func (x *ForecastCashFlowResponse) GetHistorical() []*ForecastPoint {
	if x != nil {
		return x.Historical
	}
	return nil
}

func (x *ForecastCashFlowResponse) GetForecasts() []*ForecastPoint {
	if x != nil {
		return x.Forecasts
	}
	return nil
}

func (x *ForecastCashFlowResponse) GetAvgIncome() string {
	if x != nil {
		return x.AvgIncome
	}
	return ""
}

func (x *ForecastCashFlowResponse) GetAvgExpense() string {
	if x != nil {
		return x.AvgExpense
	}
	return ""
}

func (x *ForecastCashFlowResponse) GetAvgBalance() string {
	if x != nil {
		return x.AvgBalance
	}
	return ""
}

type PredictExpensesRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserId           string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	HistoricalMonths int32  `protobuf:"varint,2,opt,name=historical_months,json=historicalMonths,proto3" json:"historical_months,omitempty"`
}

func (x *PredictExpensesRequest) Reset() {
	*x = PredictExpensesRequest{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PredictExpensesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PredictExpensesRequest) ProtoMessage() {}

func (x *PredictExpensesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PredictExpensesRequest.ProtoReflect.Descriptor instead.
func (*PredictExpensesRequest) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{13}
}

func (x *PredictExpensesRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *PredictExpensesRequest) GetHistoricalMonths() int32 {
	if x != nil {
		return x.HistoricalMonths
	}
	return 0
}

type CategoryPrediction struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	CategoryName string       `protobuf:"bytes,1,opt,name=category_name,json=categoryName,proto3" json:"category_name,omitempty"`
	Trend        *TrendResult `protobuf:"bytes,2,opt,name=trend,proto3" json:"trend,omitempty"`
}

func (x *CategoryPrediction) Reset() {
	*x = CategoryPrediction{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CategoryPrediction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CategoryPrediction) ProtoMessage() {}

func (x *CategoryPrediction) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CategoryPrediction.ProtoReflect.Descriptor instead.
func (*CategoryPrediction) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{14}
}

func (x *CategoryPrediction) GetCategoryName() string {
	if x != nil {
		return x.CategoryName
	}
	return ""
}

func (x *CategoryPrediction) GetTrend() *TrendResult {
	if x != nil {
		return x.Trend
	}
	return nil
}

type PredictExpensesResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Categories []*CategoryPrediction `protobuf:"bytes,1,rep,name=categories,proto3" json:"categories,omitempty"`
	Total      string                `protobuf:"bytes,2,opt,name=total,proto3" json:"total,omitempty"`
	Confidence float64               `protobuf:"fixed64,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
}

func (x *PredictExpensesResponse) Reset() {
	*x = PredictExpensesResponse{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PredictExpensesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PredictExpensesResponse) ProtoMessage() {}

func (x *PredictExpensesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PredictExpensesResponse.ProtoReflect.Descriptor instead.
func (*PredictExpensesResponse) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{15}
}

func (x *PredictExpensesResponse) GetCategories() []*CategoryPrediction {
	if x != nil {
		return x.Categories
	}
	return nil
}

func (x *PredictExpensesResponse) GetTotal() string {
	if x != nil {
		return x.Total
	}
	return ""
}

func (x *PredictExpensesResponse) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type SimulatedMonth struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Month             int32  `protobuf:"varint,1,opt,name=month,proto3" json:"month,omitempty"`
	Income            string `protobuf:"bytes,2,opt,name=income,proto3" json:"income,omitempty"`
	Expenses          string `protobuf:"bytes,3,opt,name=expenses,proto3" json:"expenses,omitempty"`
	Savings           string `protobuf:"bytes,4,opt,name=savings,proto3" json:"savings,omitempty"`
	CumulativeBalance string `protobuf:"bytes,5,opt,name=cumulative_balance,json=cumulativeBalance,proto3" json:"cumulative_balance,omitempty"`
}

func (x *SimulatedMonth) Reset() {
	*x = SimulatedMonth{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SimulatedMonth) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SimulatedMonth) ProtoMessage() {}

func (x *SimulatedMonth) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SimulatedMonth.ProtoReflect.Descriptor instead.
func (*SimulatedMonth) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{16}
}

func (x *SimulatedMonth) GetMonth() int32 {
	if x != nil {
		return x.Month
	}
	return 0
}

func (x *SimulatedMonth) GetIncome() string {
	if x != nil {
		return x.Income
	}
	return ""
}

func (x *SimulatedMonth) GetExpenses() string {
	if x != nil {
		return x.Expenses
	}
	return ""
}

func (x *SimulatedMonth) GetSavings() string {
	if x != nil {
		return x.Savings
	}
	return ""
}

func (x *SimulatedMonth) GetCumulativeBalance() string {
	if x != nil {
		return x.CumulativeBalance
	}
	return ""
}

type SimulationSummary struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	TotalIncome   string `protobuf:"bytes,1,opt,name=total_income,json=totalIncome,proto3" json:"total_income,omitempty"`
	TotalExpenses string `protobuf:"bytes,2,opt,name=total_expenses,json=totalExpenses,proto3" json:"total_expenses,omitempty"`
	TotalSavings  string `protobuf:"bytes,3,opt,name=total_savings,json=totalSavings,proto3" json:"total_savings,omitempty"`
	FinalBalance  string `protobuf:"bytes,4,opt,name=final_balance,json=finalBalance,proto3" json:"final_balance,omitempty"`
}

func (x *SimulationSummary) Reset() {
	*x = SimulationSummary{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SimulationSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SimulationSummary) ProtoMessage() {}

func (x *SimulationSummary) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SimulationSummary.ProtoReflect.Descriptor instead.
func (*SimulationSummary) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{17}
}

func (x *SimulationSummary) GetTotalIncome() string {
	if x != nil {
		return x.TotalIncome
	}
	return ""
}

func (x *SimulationSummary) GetTotalExpenses() string {
	if x != nil {
		return x.TotalExpenses
	}
	return ""
}

func (x *SimulationSummary) GetTotalSavings() string {
	if x != nil {
		return x.TotalSavings
	}
	return ""
}

func (x *SimulationSummary) GetFinalBalance() string {
	if x != nil {
		return x.FinalBalance
	}
	return ""
}

type SimulationResult struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Months  []*SimulatedMonth  `protobuf:"bytes,1,rep,name=months,proto3" json:"months,omitempty"`
	Summary *SimulationSummary `protobuf:"bytes,2,opt,name=summary,proto3" json:"summary,omitempty"`
}

func (x *SimulationResult) Reset() {
	*x = SimulationResult{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SimulationResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SimulationResult) ProtoMessage() {}

func (x *SimulationResult) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SimulationResult.ProtoReflect.Descriptor instead.
func (*SimulationResult) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{18}
}

func (x *SimulationResult) GetMonths() []*SimulatedMonth {
	if x != nil {
		return x.Months
	}
	return nil
}

func (x *SimulationResult) GetSummary() *SimulationSummary {
	if x != nil {
		return x.Summary
	}
	return nil
}

type SimulateSavingsRateRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserId        string  `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	TargetRatePct float64 `protobuf:"fixed64,2,opt,name=target_rate_pct,json=targetRatePct,proto3" json:"target_rate_pct,omitempty"`
	Months        int32   `protobuf:"varint,3,opt,name=months,proto3" json:"months,omitempty"`
}

func (x *SimulateSavingsRateRequest) Reset() {
	*x = SimulateSavingsRateRequest{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SimulateSavingsRateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SimulateSavingsRateRequest) ProtoMessage() {}

func (x *SimulateSavingsRateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SimulateSavingsRateRequest.ProtoReflect.Descriptor instead.
func (*SimulateSavingsRateRequest) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{19}
}

func (x *SimulateSavingsRateRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *SimulateSavingsRateRequest) GetTargetRatePct() float64 {
	if x != nil {
		return x.TargetRatePct
	}
	return 0
}

func (x *SimulateSavingsRateRequest) GetMonths() int32 {
	if x != nil {
		return x.Months
	}
	return 0
}

type SimulateSavingsRateResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Result *SimulationResult `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (x *SimulateSavingsRateResponse) Reset() {
	*x = SimulateSavingsRateResponse{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SimulateSavingsRateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SimulateSavingsRateResponse) ProtoMessage() {}

func (x *SimulateSavingsRateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SimulateSavingsRateResponse.ProtoReflect.Descriptor instead.
func (*SimulateSavingsRateResponse) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{20}
}

func (x *SimulateSavingsRateResponse) GetResult() *SimulationResult {
	if x != nil {
		return x.Result
	}
	return nil
}

type SimulateCategoryReductionRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserId       string  `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	CategoryName string  `protobuf:"bytes,2,opt,name=category_name,json=categoryName,proto3" json:"category_name,omitempty"`
	ReductionPct float64 `protobuf:"fixed64,3,opt,name=reduction_pct,json=reductionPct,proto3" json:"reduction_pct,omitempty"`
	Months       int32   `protobuf:"varint,4,opt,name=months,proto3" json:"months,omitempty"`
}

func (x *SimulateCategoryReductionRequest) Reset() {
	*x = SimulateCategoryReductionRequest{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SimulateCategoryReductionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SimulateCategoryReductionRequest) ProtoMessage() {}

func (x *SimulateCategoryReductionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SimulateCategoryReductionRequest.ProtoReflect.Descriptor instead.
func (*SimulateCategoryReductionRequest) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{21}
}

func (x *SimulateCategoryReductionRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *SimulateCategoryReductionRequest) GetCategoryName() string {
	if x != nil {
		return x.CategoryName
	}
	return ""
}

func (x *SimulateCategoryReductionRequest) GetReductionPct() float64 {
	if x != nil {
		return x.ReductionPct
	}
	return 0
}

func (x *SimulateCategoryReductionRequest) GetMonths() int32 {
	if x != nil {
		return x.Months
	}
	return 0
}

type SimulateCategoryReductionResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Before     *SimulationResult `protobuf:"bytes,1,opt,name=before,proto3" json:"before,omitempty"`
	After      *SimulationResult `protobuf:"bytes,2,opt,name=after,proto3" json:"after,omitempty"`
	NetBenefit string            `protobuf:"bytes,3,opt,name=net_benefit,json=netBenefit,proto3" json:"net_benefit,omitempty"`
}

func (x *SimulateCategoryReductionResponse) Reset() {
	*x = SimulateCategoryReductionResponse{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SimulateCategoryReductionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SimulateCategoryReductionResponse) ProtoMessage() {}

func (x *SimulateCategoryReductionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SimulateCategoryReductionResponse.ProtoReflect.Descriptor instead.
func (*SimulateCategoryReductionResponse) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{22}
}

func (x *SimulateCategoryReductionResponse) GetBefore() *SimulationResult {
	if x != nil {
		return x.Before
	}
	return nil
}

func (x *SimulateCategoryReductionResponse) GetAfter() *SimulationResult {
	if x != nil {
		return x.After
	}
	return nil
}

func (x *SimulateCategoryReductionResponse) GetNetBenefit() string {
	if x != nil {
		return x.NetBenefit
	}
	return ""
}

type SimulateIncomeIncreaseRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserId      string  `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	IncreasePct float64 `protobuf:"fixed64,2,opt,name=increase_pct,json=increasePct,proto3" json:"increase_pct,omitempty"`
	Months      int32   `protobuf:"varint,3,opt,name=months,proto3" json:"months,omitempty"`
}

func (x *SimulateIncomeIncreaseRequest) Reset() {
	*x = SimulateIncomeIncreaseRequest{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SimulateIncomeIncreaseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SimulateIncomeIncreaseRequest) ProtoMessage() {}

func (x *SimulateIncomeIncreaseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SimulateIncomeIncreaseRequest.ProtoReflect.Descriptor instead.
func (*SimulateIncomeIncreaseRequest) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{23}
}

func (x *SimulateIncomeIncreaseRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *SimulateIncomeIncreaseRequest) GetIncreasePct() float64 {
	if x != nil {
		return x.IncreasePct
	}
	return 0
}

func (x *SimulateIncomeIncreaseRequest) GetMonths() int32 {
	if x != nil {
		return x.Months
	}
	return 0
}

type SimulateIncomeIncreaseResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Before            *SimulationResult `protobuf:"bytes,1,opt,name=before,proto3" json:"before,omitempty"`
	After             *SimulationResult `protobuf:"bytes,2,opt,name=after,proto3" json:"after,omitempty"`
	AdditionalSavings string            `protobuf:"bytes,3,opt,name=additional_savings,json=additionalSavings,proto3" json:"additional_savings,omitempty"`
}

func (x *SimulateIncomeIncreaseResponse) Reset() {
	*x = SimulateIncomeIncreaseResponse{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SimulateIncomeIncreaseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SimulateIncomeIncreaseResponse) ProtoMessage() {}

func (x *SimulateIncomeIncreaseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SimulateIncomeIncreaseResponse.ProtoReflect.Descriptor instead.
func (*SimulateIncomeIncreaseResponse) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{24}
}

func (x *SimulateIncomeIncreaseResponse) GetBefore() *SimulationResult {
	if x != nil {
		return x.Before
	}
	return nil
}

func (x *SimulateIncomeIncreaseResponse) GetAfter() *SimulationResult {
	if x != nil {
		return x.After
	}
	return nil
}

func (x *SimulateIncomeIncreaseResponse) GetAdditionalSavings() string {
	if x != nil {
		return x.AdditionalSavings
	}
	return ""
}

type SimulateGoalTimelineRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserId         string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	GoalAmount     string `protobuf:"bytes,2,opt,name=goal_amount,json=goalAmount,proto3" json:"goal_amount,omitempty"`
	MonthlySavings string `protobuf:"bytes,3,opt,name=monthly_savings,json=monthlySavings,proto3" json:"monthly_savings,omitempty"` // empty = derive from trailing averages
}

func (x *SimulateGoalTimelineRequest) Reset() {
	*x = SimulateGoalTimelineRequest{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SimulateGoalTimelineRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SimulateGoalTimelineRequest) ProtoMessage() {}

func (x *SimulateGoalTimelineRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SimulateGoalTimelineRequest.ProtoReflect.Descriptor instead.
func (*SimulateGoalTimelineRequest) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{25}
}

func (x *SimulateGoalTimelineRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *SimulateGoalTimelineRequest) GetGoalAmount() string {
	if x != nil {
		return x.GoalAmount
	}
	return ""
}

func (x *SimulateGoalTimelineRequest) GetMonthlySavings() string {
	if x != nil {
		return x.MonthlySavings
	}
	return ""
}

type GoalMonth struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Month       int32  `protobuf:"varint,1,opt,name=month,proto3" json:"month,omitempty"`
	Saved       string `protobuf:"bytes,2,opt,name=saved,proto3" json:"saved,omitempty"`
	Accumulated string `protobuf:"bytes,3,opt,name=accumulated,proto3" json:"accumulated,omitempty"`
}

func (x *GoalMonth) Reset() {
	*x = GoalMonth{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GoalMonth) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GoalMonth) ProtoMessage() {}

func (x *GoalMonth) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GoalMonth.ProtoReflect.Descriptor instead.
func (*GoalMonth) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{26}
}

func (x *GoalMonth) GetMonth() int32 {
	if x != nil {
		return x.Month
	}
	return 0
}

func (x *GoalMonth) GetSaved() string {
	if x != nil {
		return x.Saved
	}
	return ""
}

func (x *GoalMonth) GetAccumulated() string {
	if x != nil {
		return x.Accumulated
	}
	return ""
}

type SimulateGoalTimelineResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	MonthsNeeded   int32        `protobuf:"varint,1,opt,name=months_needed,json=monthsNeeded,proto3" json:"months_needed,omitempty"`
	MonthlySavings string       `protobuf:"bytes,2,opt,name=monthly_savings,json=monthlySavings,proto3" json:"monthly_savings,omitempty"`
	Schedule       []*GoalMonth `protobuf:"bytes,3,rep,name=schedule,proto3" json:"schedule,omitempty"`
}

func (x *SimulateGoalTimelineResponse) Reset() {
	*x = SimulateGoalTimelineResponse{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SimulateGoalTimelineResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SimulateGoalTimelineResponse) ProtoMessage() {}

func (x *SimulateGoalTimelineResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SimulateGoalTimelineResponse.ProtoReflect.Descriptor instead.
func (*SimulateGoalTimelineResponse) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{27}
}

func (x *SimulateGoalTimelineResponse) GetMonthsNeeded() int32 {
	if x != nil {
		return x.MonthsNeeded
	}
	return 0
}

func (x *SimulateGoalTimelineResponse) GetMonthlySavings() string {
	if x != nil {
		return x.MonthlySavings
	}
	return ""
}

func (x *SimulateGoalTimelineResponse) GetSchedule() []*GoalMonth {
	if x != nil {
		return x.Schedule
	}
	return nil
}

type SimulateRetirementRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	CurrentAge          int32   `protobuf:"varint,1,opt,name=current_age,json=currentAge,proto3" json:"current_age,omitempty"`
	RetirementAge       int32   `protobuf:"varint,2,opt,name=retirement_age,json=retirementAge,proto3" json:"retirement_age,omitempty"`
	MonthlyContribution string  `protobuf:"bytes,3,opt,name=monthly_contribution,json=monthlyContribution,proto3" json:"monthly_contribution,omitempty"`
	MonthlyRate         float64 `protobuf:"fixed64,4,opt,name=monthly_rate,json=monthlyRate,proto3" json:"monthly_rate,omitempty"`
}

func (x *SimulateRetirementRequest) Reset() {
	*x = SimulateRetirementRequest{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SimulateRetirementRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SimulateRetirementRequest) ProtoMessage() {}

func (x *SimulateRetirementRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SimulateRetirementRequest.ProtoReflect.Descriptor instead.
func (*SimulateRetirementRequest) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{28}
}

func (x *SimulateRetirementRequest) GetCurrentAge() int32 {
	if x != nil {
		return x.CurrentAge
	}
	return 0
}

func (x *SimulateRetirementRequest) GetRetirementAge() int32 {
	if x != nil {
		return x.RetirementAge
	}
	return 0
}

func (x *SimulateRetirementRequest) GetMonthlyContribution() string {
	if x != nil {
		return x.MonthlyContribution
	}
	return ""
}

func (x *SimulateRetirementRequest) GetMonthlyRate() float64 {
	if x != nil {
		return x.MonthlyRate
	}
	return 0
}

type SimulateRetirementResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Months                int32  `protobuf:"varint,1,opt,name=months,proto3" json:"months,omitempty"`
	TotalContributions    string `protobuf:"bytes,2,opt,name=total_contributions,json=totalContributions,proto3" json:"total_contributions,omitempty"`
	EstimatedValue        string `protobuf:"bytes,3,opt,name=estimated_value,json=estimatedValue,proto3" json:"estimated_value,omitempty"`
	MonthlyIncomeEstimate string `protobuf:"bytes,4,opt,name=monthly_income_estimate,json=monthlyIncomeEstimate,proto3" json:"monthly_income_estimate,omitempty"`
}

func (x *SimulateRetirementResponse) Reset() {
	*x = SimulateRetirementResponse{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SimulateRetirementResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SimulateRetirementResponse) ProtoMessage() {}

func (x *SimulateRetirementResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SimulateRetirementResponse.ProtoReflect.Descriptor instead.
func (*SimulateRetirementResponse) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{29}
}

func (x *SimulateRetirementResponse) GetMonths() int32 {
	if x != nil {
		return x.Months
	}
	return 0
}

func (x *SimulateRetirementResponse) GetTotalContributions() string {
	if x != nil {
		return x.TotalContributions
	}
	return ""
}

func (x *SimulateRetirementResponse) GetEstimatedValue() string {
	if x != nil {
		return x.EstimatedValue
	}
	return ""
}

func (x *SimulateRetirementResponse) GetMonthlyIncomeEstimate() string {
	if x != nil {
		return x.MonthlyIncomeEstimate
	}
	return ""
}

type ScenarioAdjustment struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Name       string  `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	IncomePct  float64 `protobuf:"fixed64,2,opt,name=income_pct,json=incomePct,proto3" json:"income_pct,omitempty"`
	ExpensePct float64 `protobuf:"fixed64,3,opt,name=expense_pct,json=expensePct,proto3" json:"expense_pct,omitempty"`
}

func (x *ScenarioAdjustment) Reset() {
	*x = ScenarioAdjustment{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScenarioAdjustment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScenarioAdjustment) ProtoMessage() {}

func (x *ScenarioAdjustment) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScenarioAdjustment.ProtoReflect.Descriptor instead.
func (*ScenarioAdjustment) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{30}
}

func (x *ScenarioAdjustment) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ScenarioAdjustment) GetIncomePct() float64 {
	if x != nil {
		return x.IncomePct
	}
	return 0
}

func (x *ScenarioAdjustment) GetExpensePct() float64 {
	if x != nil {
		return x.ExpensePct
	}
	return 0
}

type CompareScenariosRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserId      string                `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Months      int32                 `protobuf:"varint,2,opt,name=months,proto3" json:"months,omitempty"`
	Adjustments []*ScenarioAdjustment `protobuf:"bytes,3,rep,name=adjustments,proto3" json:"adjustments,omitempty"`
}

func (x *CompareScenariosRequest) Reset() {
	*x = CompareScenariosRequest{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompareScenariosRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompareScenariosRequest) ProtoMessage() {}

func (x *CompareScenariosRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompareScenariosRequest.ProtoReflect.Descriptor instead.
func (*CompareScenariosRequest) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{31}
}

func (x *CompareScenariosRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *CompareScenariosRequest) GetMonths() int32 {
	if x != nil {
		return x.Months
	}
	return 0
}

func (x *CompareScenariosRequest) GetAdjustments() []*ScenarioAdjustment {
	if x != nil {
		return x.Adjustments
	}
	return nil
}

type ScenarioComparison struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Name          string            `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	IncomePct     float64           `protobuf:"fixed64,2,opt,name=income_pct,json=incomePct,proto3" json:"income_pct,omitempty"`
	ExpensePct    float64           `protobuf:"fixed64,3,opt,name=expense_pct,json=expensePct,proto3" json:"expense_pct,omitempty"`
	Result        *SimulationResult `protobuf:"bytes,4,opt,name=result,proto3" json:"result,omitempty"`
	SavingsVsBase string            `protobuf:"bytes,5,opt,name=savings_vs_base,json=savingsVsBase,proto3" json:"savings_vs_base,omitempty"`
}

func (x *ScenarioComparison) Reset() {
	*x = ScenarioComparison{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScenarioComparison) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScenarioComparison) ProtoMessage() {}

func (x *ScenarioComparison) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScenarioComparison.ProtoReflect.Descriptor instead.
func (*ScenarioComparison) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{32}
}

func (x *ScenarioComparison) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ScenarioComparison) GetIncomePct() float64 {
	if x != nil {
		return x.IncomePct
	}
	return 0
}

func (x *ScenarioComparison) GetExpensePct() float64 {
	if x != nil {
		return x.ExpensePct
	}
	return 0
}

func (x *ScenarioComparison) GetResult() *SimulationResult {
	if x != nil {
		return x.Result
	}
	return nil
}

func (x *ScenarioComparison) GetSavingsVsBase() string {
	if x != nil {
		return x.SavingsVsBase
	}
	return ""
}

type CompareScenariosResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Comparisons []*ScenarioComparison `protobuf:"bytes,1,rep,name=comparisons,proto3" json:"comparisons,omitempty"`
}

func (x *CompareScenariosResponse) Reset() {
	*x = CompareScenariosResponse{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompareScenariosResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompareScenariosResponse) ProtoMessage() {}

func (x *CompareScenariosResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompareScenariosResponse.ProtoReflect.Descriptor instead.
func (*CompareScenariosResponse) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{33}
}

func (x *CompareScenariosResponse) GetComparisons() []*ScenarioComparison {
	if x != nil {
		return x.Comparisons
	}
	return nil
}

type GetHealthScoreRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserId       string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	TotalDebt    string `protobuf:"bytes,2,opt,name=total_debt,json=totalDebt,proto3" json:"total_debt,omitempty"`
	LiquidAssets string `protobuf:"bytes,3,opt,name=liquid_assets,json=liquidAssets,proto3" json:"liquid_assets,omitempty"`
}

func (x *GetHealthScoreRequest) Reset() {
	*x = GetHealthScoreRequest{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetHealthScoreRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetHealthScoreRequest) ProtoMessage() {}

func (x *GetHealthScoreRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetHealthScoreRequest.ProtoReflect.Descriptor instead.
func (*GetHealthScoreRequest) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{34}
}

func (x *GetHealthScoreRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetHealthScoreRequest) GetTotalDebt() string {
	if x != nil {
		return x.TotalDebt
	}
	return ""
}

func (x *GetHealthScoreRequest) GetLiquidAssets() string {
	if x != nil {
		return x.LiquidAssets
	}
	return ""
}

type HealthFactor struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Name   string  `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Score  float64 `protobuf:"fixed64,2,opt,name=score,proto3" json:"score,omitempty"`
	Weight float64 `protobuf:"fixed64,3,opt,name=weight,proto3" json:"weight,omitempty"`
	Status string  `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"` // GOOD, WARNING or CRITICAL
}

func (x *HealthFactor) Reset() {
	*x = HealthFactor{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealthFactor) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthFactor) ProtoMessage() {}

func (x *HealthFactor) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HealthFactor.ProtoReflect.Descriptor instead.
func (*HealthFactor) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{35}
}

func (x *HealthFactor) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *HealthFactor) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *HealthFactor) GetWeight() float64 {
	if x != nil {
		return x.Weight
	}
	return 0
}

func (x *HealthFactor) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type GetHealthScoreResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Score           int32           `protobuf:"varint,1,opt,name=score,proto3" json:"score,omitempty"`
	Grade           string          `protobuf:"bytes,2,opt,name=grade,proto3" json:"grade,omitempty"`
	Factors         []*HealthFactor `protobuf:"bytes,3,rep,name=factors,proto3" json:"factors,omitempty"`
	Recommendations []string        `protobuf:"bytes,4,rep,name=recommendations,proto3" json:"recommendations,omitempty"`
}

func (x *GetHealthScoreResponse) Reset() {
	*x = GetHealthScoreResponse{}
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetHealthScoreResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetHealthScoreResponse) ProtoMessage() {}

func (x *GetHealthScoreResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fincast_v1_fincast_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetHealthScoreResponse.ProtoReflect.Descriptor instead.
func (*GetHealthScoreResponse) Descriptor() ([]byte, []int) {
	return file_proto_fincast_v1_fincast_proto_rawDescGZIP(), []int{36}
}

func (x *GetHealthScoreResponse) GetScore() int32 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *GetHealthScoreResponse) GetGrade() string {
	if x != nil {
		return x.Grade
	}
	return ""
}

func (x *GetHealthScoreResponse) GetFactors() []*HealthFactor {
	if x != nil {
		return x.Factors
	}
	return nil
}

func (x *GetHealthScoreResponse) GetRecommendations() []string {
	if x != nil {
		return x.Recommendations
	}
	return nil
}

var File_proto_fincast_v1_fincast_proto protoreflect.FileDescriptor

var file_proto_fincast_v1_fincast_proto_rawDesc = []byte{
	0x0a, 0x1e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2f,
	0x76, 0x31, 0x2f, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x12, 0x0a, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x22, 0xaa, 0x01, 0x0a,
	0x0b, 0x54, 0x72, 0x65, 0x6e, 0x64, 0x52, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x12, 0x1c, 0x0a, 0x09,
	0x64, 0x69, 0x72, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x09, 0x64, 0x69, 0x72, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x2b, 0x0a, 0x11, 0x70, 0x65,
	0x72, 0x63, 0x65, 0x6e, 0x74, 0x61, 0x67, 0x65, 0x5f, 0x63, 0x68, 0x61, 0x6e, 0x67, 0x65, 0x18,
	0x02, 0x20, 0x01, 0x28, 0x01, 0x52, 0x10, 0x70, 0x65, 0x72, 0x63, 0x65, 0x6e, 0x74, 0x61, 0x67,
	0x65, 0x43, 0x68, 0x61, 0x6e, 0x67, 0x65, 0x12, 0x30, 0x0a, 0x14, 0x70, 0x72, 0x65, 0x64, 0x69,
	0x63, 0x74, 0x65, 0x64, 0x5f, 0x6e, 0x65, 0x78, 0x74, 0x5f, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x12, 0x70, 0x72, 0x65, 0x64, 0x69, 0x63, 0x74, 0x65, 0x64,
	0x4e, 0x65, 0x78, 0x74, 0x56, 0x61, 0x6c, 0x75, 0x65, 0x12, 0x1e, 0x0a, 0x0a, 0x63, 0x6f, 0x6e,
	0x66, 0x69, 0x64, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0a, 0x63,
	0x6f, 0x6e, 0x66, 0x69, 0x64, 0x65, 0x6e, 0x63, 0x65, 0x22, 0x43, 0x0a, 0x13, 0x41, 0x6e, 0x61,
	0x6c, 0x79, 0x7a, 0x65, 0x54, 0x72, 0x65, 0x6e, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x12, 0x14, 0x0a, 0x05, 0x6c, 0x61, 0x62, 0x65, 0x6c, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x05, 0x6c, 0x61, 0x62, 0x65, 0x6c, 0x12, 0x16, 0x0a, 0x06, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x73,
	0x18, 0x02, 0x20, 0x03, 0x28, 0x09, 0x52, 0x06, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x73, 0x22, 0x45,
	0x0a, 0x14, 0x41, 0x6e, 0x61, 0x6c, 0x79, 0x7a, 0x65, 0x54, 0x72, 0x65, 0x6e, 0x64, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x2d, 0x0a, 0x05, 0x74, 0x72, 0x65, 0x6e, 0x64, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x17, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e,
	0x76, 0x31, 0x2e, 0x54, 0x72, 0x65, 0x6e, 0x64, 0x52, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x52, 0x05,
	0x74, 0x72, 0x65, 0x6e, 0x64, 0x22, 0x88, 0x01, 0x0a, 0x1a, 0x43, 0x6c, 0x61, 0x73, 0x73, 0x69,
	0x66, 0x79, 0x54, 0x72, 0x61, 0x6e, 0x73, 0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x12, 0x20, 0x0a, 0x0b, 0x64, 0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74,
	0x69, 0x6f, 0x6e, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x64, 0x65, 0x73, 0x63, 0x72,
	0x69, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x16, 0x0a, 0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x30,
	0x0a, 0x14, 0x65, 0x78, 0x70, 0x6c, 0x69, 0x63, 0x69, 0x74, 0x5f, 0x63, 0x61, 0x74, 0x65, 0x67,
	0x6f, 0x72, 0x79, 0x5f, 0x69, 0x64, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x12, 0x65, 0x78,
	0x70, 0x6c, 0x69, 0x63, 0x69, 0x74, 0x43, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x49, 0x64,
	0x22, 0xa5, 0x01, 0x0a, 0x18, 0x43, 0x6c, 0x61, 0x73, 0x73, 0x69, 0x66, 0x69, 0x63, 0x61, 0x74,
	0x69, 0x6f, 0x6e, 0x53, 0x75, 0x67, 0x67, 0x65, 0x73, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x1f, 0x0a,
	0x0b, 0x63, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x0a, 0x63, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x49, 0x64, 0x12, 0x23,
	0x0a, 0x0d, 0x63, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x18,
	0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x63, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x4e,
	0x61, 0x6d, 0x65, 0x12, 0x23, 0x0a, 0x0d, 0x63, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x5f,
	0x74, 0x79, 0x70, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x63, 0x61, 0x74, 0x65,
	0x67, 0x6f, 0x72, 0x79, 0x54, 0x79, 0x70, 0x65, 0x12, 0x1e, 0x0a, 0x0a, 0x63, 0x6f, 0x6e, 0x66,
	0x69, 0x64, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0a, 0x63, 0x6f,
	0x6e, 0x66, 0x69, 0x64, 0x65, 0x6e, 0x63, 0x65, 0x22, 0x65, 0x0a, 0x1b, 0x43, 0x6c, 0x61, 0x73,
	0x73, 0x69, 0x66, 0x79, 0x54, 0x72, 0x61, 0x6e, 0x73, 0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x46, 0x0a, 0x0b, 0x73, 0x75, 0x67, 0x67, 0x65,
	0x73, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x24, 0x2e, 0x66,
	0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6c, 0x61, 0x73, 0x73, 0x69,
	0x66, 0x69, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x53, 0x75, 0x67, 0x67, 0x65, 0x73, 0x74, 0x69,
	0x6f, 0x6e, 0x52, 0x0b, 0x73, 0x75, 0x67, 0x67, 0x65, 0x73, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x22,
	0x8f, 0x01, 0x0a, 0x1a, 0x4c, 0x65, 0x61, 0x72, 0x6e, 0x43, 0x6c, 0x61, 0x73, 0x73, 0x69, 0x66,
	0x69, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x20,
	0x0a, 0x0b, 0x64, 0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0b, 0x64, 0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x69, 0x6f, 0x6e,
	0x12, 0x16, 0x0a, 0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x1f, 0x0a, 0x0b, 0x63, 0x61, 0x74, 0x65,
	0x67, 0x6f, 0x72, 0x79, 0x5f, 0x69, 0x64, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x63,
	0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x49, 0x64, 0x12, 0x16, 0x0a, 0x06, 0x73, 0x6f, 0x75,
	0x72, 0x63, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x73, 0x6f, 0x75, 0x72, 0x63,
	0x65, 0x22, 0x1d, 0x0a, 0x1b, 0x4c, 0x65, 0x61, 0x72, 0x6e, 0x43, 0x6c, 0x61, 0x73, 0x73, 0x69,
	0x66, 0x69, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x22, 0xb3, 0x01, 0x0a, 0x14, 0x44, 0x65, 0x74, 0x65, 0x63, 0x74, 0x41, 0x6e, 0x6f, 0x6d, 0x61,
	0x6c, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x23, 0x0a, 0x0d, 0x63, 0x61, 0x74,
	0x65, 0x67, 0x6f, 0x72, 0x79, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x0c, 0x63, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x4e, 0x61, 0x6d, 0x65, 0x12, 0x18,
	0x0a, 0x07, 0x68, 0x69, 0x73, 0x74, 0x6f, 0x72, 0x79, 0x18, 0x02, 0x20, 0x03, 0x28, 0x09, 0x52,
	0x07, 0x68, 0x69, 0x73, 0x74, 0x6f, 0x72, 0x79, 0x12, 0x1d, 0x0a, 0x0a, 0x6e, 0x65, 0x77, 0x5f,
	0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x6e, 0x65,
	0x77, 0x41, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x1c, 0x0a, 0x09, 0x74, 0x68, 0x72, 0x65, 0x73,
	0x68, 0x6f, 0x6c, 0x64, 0x18, 0x04, 0x20, 0x01, 0x28, 0x01, 0x52, 0x09, 0x74, 0x68, 0x72, 0x65,
	0x73, 0x68, 0x6f, 0x6c, 0x64, 0x12, 0x1f, 0x0a, 0x0b, 0x6d, 0x69, 0x6e, 0x5f, 0x73, 0x61, 0x6d,
	0x70, 0x6c, 0x65, 0x73, 0x18, 0x05, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0a, 0x6d, 0x69, 0x6e, 0x53,
	0x61, 0x6d, 0x70, 0x6c, 0x65, 0x73, 0x22, 0xa0, 0x01, 0x0a, 0x15, 0x44, 0x65, 0x74, 0x65, 0x63,
	0x74, 0x41, 0x6e, 0x6f, 0x6d, 0x61, 0x6c, 0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x21, 0x0a, 0x0c, 0x69, 0x73, 0x5f, 0x61, 0x6e, 0x6f, 0x6d, 0x61, 0x6c, 0x6f, 0x75, 0x73,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0b, 0x69, 0x73, 0x41, 0x6e, 0x6f, 0x6d, 0x61, 0x6c,
	0x6f, 0x75, 0x73, 0x12, 0x18, 0x0a, 0x07, 0x61, 0x76, 0x65, 0x72, 0x61, 0x67, 0x65, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x61, 0x76, 0x65, 0x72, 0x61, 0x67, 0x65, 0x12, 0x21, 0x0a,
	0x0c, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x5f, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x05, 0x52, 0x0b, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x43, 0x6f, 0x75, 0x6e, 0x74,
	0x12, 0x27, 0x0a, 0x0f, 0x64, 0x65, 0x76, 0x69, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x72, 0x61,
	0x74, 0x69, 0x6f, 0x18, 0x04, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0e, 0x64, 0x65, 0x76, 0x69, 0x61,
	0x74, 0x69, 0x6f, 0x6e, 0x52, 0x61, 0x74, 0x69, 0x6f, 0x22, 0x88, 0x01, 0x0a, 0x17, 0x46, 0x6f,
	0x72, 0x65, 0x63, 0x61, 0x73, 0x74, 0x43, 0x61, 0x73, 0x68, 0x46, 0x6c, 0x6f, 0x77, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x75, 0x73, 0x65, 0x72, 0x5f, 0x69, 0x64,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x75, 0x73, 0x65, 0x72, 0x49, 0x64, 0x12, 0x2b,
	0x0a, 0x11, 0x68, 0x69, 0x73, 0x74, 0x6f, 0x72, 0x69, 0x63, 0x61, 0x6c, 0x5f, 0x6d, 0x6f, 0x6e,
	0x74, 0x68, 0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x05, 0x52, 0x10, 0x68, 0x69, 0x73, 0x74, 0x6f,
	0x72, 0x69, 0x63, 0x61, 0x6c, 0x4d, 0x6f, 0x6e, 0x74, 0x68, 0x73, 0x12, 0x27, 0x0a, 0x0f, 0x66,
	0x6f, 0x72, 0x65, 0x63, 0x61, 0x73, 0x74, 0x5f, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x73, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x05, 0x52, 0x0e, 0x66, 0x6f, 0x72, 0x65, 0x63, 0x61, 0x73, 0x74, 0x4d, 0x6f,
	0x6e, 0x74, 0x68, 0x73, 0x22, 0x85, 0x01, 0x0a, 0x0d, 0x46, 0x6f, 0x72, 0x65, 0x63, 0x61, 0x73,
	0x74, 0x50, 0x6f, 0x69, 0x6e, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x12, 0x12, 0x0a, 0x04,
	0x6b, 0x69, 0x6e, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6b, 0x69, 0x6e, 0x64,
	0x12, 0x16, 0x0a, 0x06, 0x69, 0x6e, 0x63, 0x6f, 0x6d, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x06, 0x69, 0x6e, 0x63, 0x6f, 0x6d, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x65, 0x78, 0x70, 0x65,
	0x6e, 0x73, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x65, 0x78, 0x70, 0x65, 0x6e,
	0x73, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x62, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x18, 0x05, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x07, 0x62, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x22, 0xef, 0x01, 0x0a,
	0x18, 0x46, 0x6f, 0x72, 0x65, 0x63, 0x61, 0x73, 0x74, 0x43, 0x61, 0x73, 0x68, 0x46, 0x6c, 0x6f,
	0x77, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x39, 0x0a, 0x0a, 0x68, 0x69, 0x73,
	0x74, 0x6f, 0x72, 0x69, 0x63, 0x61, 0x6c, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x19, 0x2e,
	0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x46, 0x6f, 0x72, 0x65, 0x63,
	0x61, 0x73, 0x74, 0x50, 0x6f, 0x69, 0x6e, 0x74, 0x52, 0x0a, 0x68, 0x69, 0x73, 0x74, 0x6f, 0x72,
	0x69, 0x63, 0x61, 0x6c, 0x12, 0x37, 0x0a, 0x09, 0x66, 0x6f, 0x72, 0x65, 0x63, 0x61, 0x73, 0x74,
	0x73, 0x18, 0x02, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x19, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73,
	0x74, 0x2e, 0x76, 0x31, 0x2e, 0x46, 0x6f, 0x72, 0x65, 0x63, 0x61, 0x73, 0x74, 0x50, 0x6f, 0x69,
	0x6e, 0x74, 0x52, 0x09, 0x66, 0x6f, 0x72, 0x65, 0x63, 0x61, 0x73, 0x74, 0x73, 0x12, 0x1d, 0x0a,
	0x0a, 0x61, 0x76, 0x67, 0x5f, 0x69, 0x6e, 0x63, 0x6f, 0x6d, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x09, 0x61, 0x76, 0x67, 0x49, 0x6e, 0x63, 0x6f, 0x6d, 0x65, 0x12, 0x1f, 0x0a, 0x0b,
	0x61, 0x76, 0x67, 0x5f, 0x65, 0x78, 0x70, 0x65, 0x6e, 0x73, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0a, 0x61, 0x76, 0x67, 0x45, 0x78, 0x70, 0x65, 0x6e, 0x73, 0x65, 0x12, 0x1f, 0x0a,
	0x0b, 0x61, 0x76, 0x67, 0x5f, 0x62, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x18, 0x05, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x0a, 0x61, 0x76, 0x67, 0x42, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x22, 0x5e,
	0x0a, 0x16, 0x50, 0x72, 0x65, 0x64, 0x69, 0x63, 0x74, 0x45, 0x78, 0x70, 0x65, 0x6e, 0x73, 0x65,
	0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x75, 0x73, 0x65, 0x72,
	0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x75, 0x73, 0x65, 0x72, 0x49,
	0x64, 0x12, 0x2b, 0x0a, 0x11, 0x68, 0x69, 0x73, 0x74, 0x6f, 0x72, 0x69, 0x63, 0x61, 0x6c, 0x5f,
	0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x05, 0x52, 0x10, 0x68, 0x69,
	0x73, 0x74, 0x6f, 0x72, 0x69, 0x63, 0x61, 0x6c, 0x4d, 0x6f, 0x6e, 0x74, 0x68, 0x73, 0x22, 0x68,
	0x0a, 0x12, 0x43, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x50, 0x72, 0x65, 0x64, 0x69, 0x63,
	0x74, 0x69, 0x6f, 0x6e, 0x12, 0x23, 0x0a, 0x0d, 0x63, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79,
	0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x63, 0x61, 0x74,
	0x65, 0x67, 0x6f, 0x72, 0x79, 0x4e, 0x61, 0x6d, 0x65, 0x12, 0x2d, 0x0a, 0x05, 0x74, 0x72, 0x65,
	0x6e, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x17, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61,
	0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x54, 0x72, 0x65, 0x6e, 0x64, 0x52, 0x65, 0x73, 0x75, 0x6c,
	0x74, 0x52, 0x05, 0x74, 0x72, 0x65, 0x6e, 0x64, 0x22, 0x8f, 0x01, 0x0a, 0x17, 0x50, 0x72, 0x65,
	0x64, 0x69, 0x63, 0x74, 0x45, 0x78, 0x70, 0x65, 0x6e, 0x73, 0x65, 0x73, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x3e, 0x0a, 0x0a, 0x63, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x69,
	0x65, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x1e, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61,
	0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x50, 0x72,
	0x65, 0x64, 0x69, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x0a, 0x63, 0x61, 0x74, 0x65, 0x67, 0x6f,
	0x72, 0x69, 0x65, 0x73, 0x12, 0x14, 0x0a, 0x05, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x05, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x12, 0x1e, 0x0a, 0x0a, 0x63, 0x6f,
	0x6e, 0x66, 0x69, 0x64, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0a,
	0x63, 0x6f, 0x6e, 0x66, 0x69, 0x64, 0x65, 0x6e, 0x63, 0x65, 0x22, 0xa3, 0x01, 0x0a, 0x0e, 0x53,
	0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x64, 0x4d, 0x6f, 0x6e, 0x74, 0x68, 0x12, 0x14, 0x0a,
	0x05, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x05, 0x6d, 0x6f,
	0x6e, 0x74, 0x68, 0x12, 0x16, 0x0a, 0x06, 0x69, 0x6e, 0x63, 0x6f, 0x6d, 0x65, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x06, 0x69, 0x6e, 0x63, 0x6f, 0x6d, 0x65, 0x12, 0x1a, 0x0a, 0x08, 0x65,
	0x78, 0x70, 0x65, 0x6e, 0x73, 0x65, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x65,
	0x78, 0x70, 0x65, 0x6e, 0x73, 0x65, 0x73, 0x12, 0x18, 0x0a, 0x07, 0x73, 0x61, 0x76, 0x69, 0x6e,
	0x67, 0x73, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x73, 0x61, 0x76, 0x69, 0x6e, 0x67,
	0x73, 0x12, 0x2d, 0x0a, 0x12, 0x63, 0x75, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x69, 0x76, 0x65, 0x5f,
	0x62, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x11, 0x63,
	0x75, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x69, 0x76, 0x65, 0x42, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65,
	0x22, 0xa7, 0x01, 0x0a, 0x11, 0x53, 0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x53,
	0x75, 0x6d, 0x6d, 0x61, 0x72, 0x79, 0x12, 0x21, 0x0a, 0x0c, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x5f,
	0x69, 0x6e, 0x63, 0x6f, 0x6d, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x74, 0x6f,
	0x74, 0x61, 0x6c, 0x49, 0x6e, 0x63, 0x6f, 0x6d, 0x65, 0x12, 0x25, 0x0a, 0x0e, 0x74, 0x6f, 0x74,
	0x61, 0x6c, 0x5f, 0x65, 0x78, 0x70, 0x65, 0x6e, 0x73, 0x65, 0x73, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0d, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x45, 0x78, 0x70, 0x65, 0x6e, 0x73, 0x65, 0x73,
	0x12, 0x23, 0x0a, 0x0d, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x5f, 0x73, 0x61, 0x76, 0x69, 0x6e, 0x67,
	0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x53, 0x61,
	0x76, 0x69, 0x6e, 0x67, 0x73, 0x12, 0x23, 0x0a, 0x0d, 0x66, 0x69, 0x6e, 0x61, 0x6c, 0x5f, 0x62,
	0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x66, 0x69,
	0x6e, 0x61, 0x6c, 0x42, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x22, 0x7f, 0x0a, 0x10, 0x53, 0x69,
	0x6d, 0x75, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x12, 0x32,
	0x0a, 0x06, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x1a,
	0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x69, 0x6d, 0x75,
	0x6c, 0x61, 0x74, 0x65, 0x64, 0x4d, 0x6f, 0x6e, 0x74, 0x68, 0x52, 0x06, 0x6d, 0x6f, 0x6e, 0x74,
	0x68, 0x73, 0x12, 0x37, 0x0a, 0x07, 0x73, 0x75, 0x6d, 0x6d, 0x61, 0x72, 0x79, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x0b, 0x32, 0x1d, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31,
	0x2e, 0x53, 0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x53, 0x75, 0x6d, 0x6d, 0x61,
	0x72, 0x79, 0x52, 0x07, 0x73, 0x75, 0x6d, 0x6d, 0x61, 0x72, 0x79, 0x22, 0x75, 0x0a, 0x1a, 0x53,
	0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x53, 0x61, 0x76, 0x69, 0x6e, 0x67, 0x73, 0x52, 0x61,
	0x74, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x75, 0x73, 0x65,
	0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x75, 0x73, 0x65, 0x72,
	0x49, 0x64, 0x12, 0x26, 0x0a, 0x0f, 0x74, 0x61, 0x72, 0x67, 0x65, 0x74, 0x5f, 0x72, 0x61, 0x74,
	0x65, 0x5f, 0x70, 0x63, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0d, 0x74, 0x61, 0x72,
	0x67, 0x65, 0x74, 0x52, 0x61, 0x74, 0x65, 0x50, 0x63, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x6d, 0x6f,
	0x6e, 0x74, 0x68, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x05, 0x52, 0x06, 0x6d, 0x6f, 0x6e, 0x74,
	0x68, 0x73, 0x22, 0x53, 0x0a, 0x1b, 0x53, 0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x53, 0x61,
	0x76, 0x69, 0x6e, 0x67, 0x73, 0x52, 0x61, 0x74, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x34, 0x0a, 0x06, 0x72, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x0b, 0x32, 0x1c, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53,
	0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x52,
	0x06, 0x72, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x22, 0x9d, 0x01, 0x0a, 0x20, 0x53, 0x69, 0x6d, 0x75,
	0x6c, 0x61, 0x74, 0x65, 0x43, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x52, 0x65, 0x64, 0x75,
	0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07,
	0x75, 0x73, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x75,
	0x73, 0x65, 0x72, 0x49, 0x64, 0x12, 0x23, 0x0a, 0x0d, 0x63, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72,
	0x79, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x63, 0x61,
	0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x4e, 0x61, 0x6d, 0x65, 0x12, 0x23, 0x0a, 0x0d, 0x72, 0x65,
	0x64, 0x75, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x70, 0x63, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x01, 0x52, 0x0c, 0x72, 0x65, 0x64, 0x75, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x50, 0x63, 0x74, 0x12,
	0x16, 0x0a, 0x06, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x73, 0x18, 0x04, 0x20, 0x01, 0x28, 0x05, 0x52,
	0x06, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x73, 0x22, 0xae, 0x01, 0x0a, 0x21, 0x53, 0x69, 0x6d, 0x75,
	0x6c, 0x61, 0x74, 0x65, 0x43, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x52, 0x65, 0x64, 0x75,
	0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x34, 0x0a,
	0x06, 0x62, 0x65, 0x66, 0x6f, 0x72, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1c, 0x2e,
	0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x69, 0x6d, 0x75, 0x6c,
	0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x52, 0x06, 0x62, 0x65, 0x66,
	0x6f, 0x72, 0x65, 0x12, 0x32, 0x0a, 0x05, 0x61, 0x66, 0x74, 0x65, 0x72, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x0b, 0x32, 0x1c, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e,
	0x53, 0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x75, 0x6c, 0x74,
	0x52, 0x05, 0x61, 0x66, 0x74, 0x65, 0x72, 0x12, 0x1f, 0x0a, 0x0b, 0x6e, 0x65, 0x74, 0x5f, 0x62,
	0x65, 0x6e, 0x65, 0x66, 0x69, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x6e, 0x65,
	0x74, 0x42, 0x65, 0x6e, 0x65, 0x66, 0x69, 0x74, 0x22, 0x73, 0x0a, 0x1d, 0x53, 0x69, 0x6d, 0x75,
	0x6c, 0x61, 0x74, 0x65, 0x49, 0x6e, 0x63, 0x6f, 0x6d, 0x65, 0x49, 0x6e, 0x63, 0x72, 0x65, 0x61,
	0x73, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x75, 0x73, 0x65,
	0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x75, 0x73, 0x65, 0x72,
	0x49, 0x64, 0x12, 0x21, 0x0a, 0x0c, 0x69, 0x6e, 0x63, 0x72, 0x65, 0x61, 0x73, 0x65, 0x5f, 0x70,
	0x63, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0b, 0x69, 0x6e, 0x63, 0x72, 0x65, 0x61,
	0x73, 0x65, 0x50, 0x63, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x73, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x05, 0x52, 0x06, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x73, 0x22, 0xb9, 0x01,
	0x0a, 0x1e, 0x53, 0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x49, 0x6e, 0x63, 0x6f, 0x6d, 0x65,
	0x49, 0x6e, 0x63, 0x72, 0x65, 0x61, 0x73, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x34, 0x0a, 0x06, 0x62, 0x65, 0x66, 0x6f, 0x72, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x1c, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x69,
	0x6d, 0x75, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x52, 0x06,
	0x62, 0x65, 0x66, 0x6f, 0x72, 0x65, 0x12, 0x32, 0x0a, 0x05, 0x61, 0x66, 0x74, 0x65, 0x72, 0x18,
	0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1c, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e,
	0x76, 0x31, 0x2e, 0x53, 0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73,
	0x75, 0x6c, 0x74, 0x52, 0x05, 0x61, 0x66, 0x74, 0x65, 0x72, 0x12, 0x2d, 0x0a, 0x12, 0x61, 0x64,
	0x64, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x61, 0x6c, 0x5f, 0x73, 0x61, 0x76, 0x69, 0x6e, 0x67, 0x73,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x11, 0x61, 0x64, 0x64, 0x69, 0x74, 0x69, 0x6f, 0x6e,
	0x61, 0x6c, 0x53, 0x61, 0x76, 0x69, 0x6e, 0x67, 0x73, 0x22, 0x80, 0x01, 0x0a, 0x1b, 0x53, 0x69,
	0x6d, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x47, 0x6f, 0x61, 0x6c, 0x54, 0x69, 0x6d, 0x65, 0x6c, 0x69,
	0x6e, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x75, 0x73, 0x65,
	0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x75, 0x73, 0x65, 0x72,
	0x49, 0x64, 0x12, 0x1f, 0x0a, 0x0b, 0x67, 0x6f, 0x61, 0x6c, 0x5f, 0x61, 0x6d, 0x6f, 0x75, 0x6e,
	0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x67, 0x6f, 0x61, 0x6c, 0x41, 0x6d, 0x6f,
	0x75, 0x6e, 0x74, 0x12, 0x27, 0x0a, 0x0f, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x6c, 0x79, 0x5f, 0x73,
	0x61, 0x76, 0x69, 0x6e, 0x67, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x6d, 0x6f,
	0x6e, 0x74, 0x68, 0x6c, 0x79, 0x53, 0x61, 0x76, 0x69, 0x6e, 0x67, 0x73, 0x22, 0x59, 0x0a, 0x09,
	0x47, 0x6f, 0x61, 0x6c, 0x4d, 0x6f, 0x6e, 0x74, 0x68, 0x12, 0x14, 0x0a, 0x05, 0x6d, 0x6f, 0x6e,
	0x74, 0x68, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x05, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x12,
	0x14, 0x0a, 0x05, 0x73, 0x61, 0x76, 0x65, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05,
	0x73, 0x61, 0x76, 0x65, 0x64, 0x12, 0x20, 0x0a, 0x0b, 0x61, 0x63, 0x63, 0x75, 0x6d, 0x75, 0x6c,
	0x61, 0x74, 0x65, 0x64, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x61, 0x63, 0x63, 0x75,
	0x6d, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x64, 0x22, 0x9f, 0x01, 0x0a, 0x1c, 0x53, 0x69, 0x6d, 0x75,
	0x6c, 0x61, 0x74, 0x65, 0x47, 0x6f, 0x61, 0x6c, 0x54, 0x69, 0x6d, 0x65, 0x6c, 0x69, 0x6e, 0x65,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x23, 0x0a, 0x0d, 0x6d, 0x6f, 0x6e, 0x74,
	0x68, 0x73, 0x5f, 0x6e, 0x65, 0x65, 0x64, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52,
	0x0c, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x73, 0x4e, 0x65, 0x65, 0x64, 0x65, 0x64, 0x12, 0x27, 0x0a,
	0x0f, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x6c, 0x79, 0x5f, 0x73, 0x61, 0x76, 0x69, 0x6e, 0x67, 0x73,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x6c, 0x79, 0x53,
	0x61, 0x76, 0x69, 0x6e, 0x67, 0x73, 0x12, 0x31, 0x0a, 0x08, 0x73, 0x63, 0x68, 0x65, 0x64, 0x75,
	0x6c, 0x65, 0x18, 0x03, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x15, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61,
	0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x6f, 0x61, 0x6c, 0x4d, 0x6f, 0x6e, 0x74, 0x68, 0x52,
	0x08, 0x73, 0x63, 0x68, 0x65, 0x64, 0x75, 0x6c, 0x65, 0x22, 0xb9, 0x01, 0x0a, 0x19, 0x53, 0x69,
	0x6d, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x52, 0x65, 0x74, 0x69, 0x72, 0x65, 0x6d, 0x65, 0x6e, 0x74,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1f, 0x0a, 0x0b, 0x63, 0x75, 0x72, 0x72, 0x65,
	0x6e, 0x74, 0x5f, 0x61, 0x67, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0a, 0x63, 0x75,
	0x72, 0x72, 0x65, 0x6e, 0x74, 0x41, 0x67, 0x65, 0x12, 0x25, 0x0a, 0x0e, 0x72, 0x65, 0x74, 0x69,
	0x72, 0x65, 0x6d, 0x65, 0x6e, 0x74, 0x5f, 0x61, 0x67, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x05,
	0x52, 0x0d, 0x72, 0x65, 0x74, 0x69, 0x72, 0x65, 0x6d, 0x65, 0x6e, 0x74, 0x41, 0x67, 0x65, 0x12,
	0x31, 0x0a, 0x14, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x6c, 0x79, 0x5f, 0x63, 0x6f, 0x6e, 0x74, 0x72,
	0x69, 0x62, 0x75, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x13, 0x6d,
	0x6f, 0x6e, 0x74, 0x68, 0x6c, 0x79, 0x43, 0x6f, 0x6e, 0x74, 0x72, 0x69, 0x62, 0x75, 0x74, 0x69,
	0x6f, 0x6e, 0x12, 0x21, 0x0a, 0x0c, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x6c, 0x79, 0x5f, 0x72, 0x61,
	0x74, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0b, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x6c,
	0x79, 0x52, 0x61, 0x74, 0x65, 0x22, 0xc6, 0x01, 0x0a, 0x1a, 0x53, 0x69, 0x6d, 0x75, 0x6c, 0x61,
	0x74, 0x65, 0x52, 0x65, 0x74, 0x69, 0x72, 0x65, 0x6d, 0x65, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x73, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x05, 0x52, 0x06, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x73, 0x12, 0x2f, 0x0a, 0x13,
	0x74, 0x6f, 0x74, 0x61, 0x6c, 0x5f, 0x63, 0x6f, 0x6e, 0x74, 0x72, 0x69, 0x62, 0x75, 0x74, 0x69,
	0x6f, 0x6e, 0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x12, 0x74, 0x6f, 0x74, 0x61, 0x6c,
	0x43, 0x6f, 0x6e, 0x74, 0x72, 0x69, 0x62, 0x75, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x12, 0x27, 0x0a,
	0x0f, 0x65, 0x73, 0x74, 0x69, 0x6d, 0x61, 0x74, 0x65, 0x64, 0x5f, 0x76, 0x61, 0x6c, 0x75, 0x65,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x65, 0x73, 0x74, 0x69, 0x6d, 0x61, 0x74, 0x65,
	0x64, 0x56, 0x61, 0x6c, 0x75, 0x65, 0x12, 0x36, 0x0a, 0x17, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x6c,
	0x79, 0x5f, 0x69, 0x6e, 0x63, 0x6f, 0x6d, 0x65, 0x5f, 0x65, 0x73, 0x74, 0x69, 0x6d, 0x61, 0x74,
	0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x15, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x6c, 0x79,
	0x49, 0x6e, 0x63, 0x6f, 0x6d, 0x65, 0x45, 0x73, 0x74, 0x69, 0x6d, 0x61, 0x74, 0x65, 0x22, 0x68,
	0x0a, 0x12, 0x53, 0x63, 0x65, 0x6e, 0x61, 0x72, 0x69, 0x6f, 0x41, 0x64, 0x6a, 0x75, 0x73, 0x74,
	0x6d, 0x65, 0x6e, 0x74, 0x12, 0x12, 0x0a, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x1d, 0x0a, 0x0a, 0x69, 0x6e, 0x63, 0x6f,
	0x6d, 0x65, 0x5f, 0x70, 0x63, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x01, 0x52, 0x09, 0x69, 0x6e,
	0x63, 0x6f, 0x6d, 0x65, 0x50, 0x63, 0x74, 0x12, 0x1f, 0x0a, 0x0b, 0x65, 0x78, 0x70, 0x65, 0x6e,
	0x73, 0x65, 0x5f, 0x70, 0x63, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0a, 0x65, 0x78,
	0x70, 0x65, 0x6e, 0x73, 0x65, 0x50, 0x63, 0x74, 0x22, 0x8c, 0x01, 0x0a, 0x17, 0x43, 0x6f, 0x6d,
	0x70, 0x61, 0x72, 0x65, 0x53, 0x63, 0x65, 0x6e, 0x61, 0x72, 0x69, 0x6f, 0x73, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x75, 0x73, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x75, 0x73, 0x65, 0x72, 0x49, 0x64, 0x12, 0x16, 0x0a,
	0x06, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x05, 0x52, 0x06, 0x6d,
	0x6f, 0x6e, 0x74, 0x68, 0x73, 0x12, 0x40, 0x0a, 0x0b, 0x61, 0x64, 0x6a, 0x75, 0x73, 0x74, 0x6d,
	0x65, 0x6e, 0x74, 0x73, 0x18, 0x03, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x1e, 0x2e, 0x66, 0x69, 0x6e,
	0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x63, 0x65, 0x6e, 0x61, 0x72, 0x69, 0x6f,
	0x41, 0x64, 0x6a, 0x75, 0x73, 0x74, 0x6d, 0x65, 0x6e, 0x74, 0x52, 0x0b, 0x61, 0x64, 0x6a, 0x75,
	0x73, 0x74, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x22, 0xc6, 0x01, 0x0a, 0x12, 0x53, 0x63, 0x65, 0x6e,
	0x61, 0x72, 0x69, 0x6f, 0x43, 0x6f, 0x6d, 0x70, 0x61, 0x72, 0x69, 0x73, 0x6f, 0x6e, 0x12, 0x12,
	0x0a, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6e, 0x61,
	0x6d, 0x65, 0x12, 0x1d, 0x0a, 0x0a, 0x69, 0x6e, 0x63, 0x6f, 0x6d, 0x65, 0x5f, 0x70, 0x63, 0x74,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x01, 0x52, 0x09, 0x69, 0x6e, 0x63, 0x6f, 0x6d, 0x65, 0x50, 0x63,
	0x74, 0x12, 0x1f, 0x0a, 0x0b, 0x65, 0x78, 0x70, 0x65, 0x6e, 0x73, 0x65, 0x5f, 0x70, 0x63, 0x74,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0a, 0x65, 0x78, 0x70, 0x65, 0x6e, 0x73, 0x65, 0x50,
	0x63, 0x74, 0x12, 0x34, 0x0a, 0x06, 0x72, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x18, 0x04, 0x20, 0x01,
	0x28, 0x0b, 0x32, 0x1c, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e,
	0x53, 0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x75, 0x6c, 0x74,
	0x52, 0x06, 0x72, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x12, 0x26, 0x0a, 0x0f, 0x73, 0x61, 0x76, 0x69,
	0x6e, 0x67, 0x73, 0x5f, 0x76, 0x73, 0x5f, 0x62, 0x61, 0x73, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0d, 0x73, 0x61, 0x76, 0x69, 0x6e, 0x67, 0x73, 0x56, 0x73, 0x42, 0x61, 0x73, 0x65,
	0x22, 0x5c, 0x0a, 0x18, 0x43, 0x6f, 0x6d, 0x70, 0x61, 0x72, 0x65, 0x53, 0x63, 0x65, 0x6e, 0x61,
	0x72, 0x69, 0x6f, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x40, 0x0a, 0x0b,
	0x63, 0x6f, 0x6d, 0x70, 0x61, 0x72, 0x69, 0x73, 0x6f, 0x6e, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28,
	0x0b, 0x32, 0x1e, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53,
	0x63, 0x65, 0x6e, 0x61, 0x72, 0x69, 0x6f, 0x43, 0x6f, 0x6d, 0x70, 0x61, 0x72, 0x69, 0x73, 0x6f,
	0x6e, 0x52, 0x0b, 0x63, 0x6f, 0x6d, 0x70, 0x61, 0x72, 0x69, 0x73, 0x6f, 0x6e, 0x73, 0x22, 0x74,
	0x0a, 0x15, 0x47, 0x65, 0x74, 0x48, 0x65, 0x61, 0x6c, 0x74, 0x68, 0x53, 0x63, 0x6f, 0x72, 0x65,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x75, 0x73, 0x65, 0x72, 0x5f,
	0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x75, 0x73, 0x65, 0x72, 0x49, 0x64,
	0x12, 0x1d, 0x0a, 0x0a, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x5f, 0x64, 0x65, 0x62, 0x74, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x44, 0x65, 0x62, 0x74, 0x12,
	0x23, 0x0a, 0x0d, 0x6c, 0x69, 0x71, 0x75, 0x69, 0x64, 0x5f, 0x61, 0x73, 0x73, 0x65, 0x74, 0x73,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x6c, 0x69, 0x71, 0x75, 0x69, 0x64, 0x41, 0x73,
	0x73, 0x65, 0x74, 0x73, 0x22, 0x68, 0x0a, 0x0c, 0x48, 0x65, 0x61, 0x6c, 0x74, 0x68, 0x46, 0x61,
	0x63, 0x74, 0x6f, 0x72, 0x12, 0x12, 0x0a, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x73, 0x63, 0x6f, 0x72,
	0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x01, 0x52, 0x05, 0x73, 0x63, 0x6f, 0x72, 0x65, 0x12, 0x16,
	0x0a, 0x06, 0x77, 0x65, 0x69, 0x67, 0x68, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x01, 0x52, 0x06,
	0x77, 0x65, 0x69, 0x67, 0x68, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73,
	0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x22, 0xa2,
	0x01, 0x0a, 0x16, 0x47, 0x65, 0x74, 0x48, 0x65, 0x61, 0x6c, 0x74, 0x68, 0x53, 0x63, 0x6f, 0x72,
	0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x73, 0x63, 0x6f,
	0x72, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x05, 0x73, 0x63, 0x6f, 0x72, 0x65, 0x12,
	0x14, 0x0a, 0x05, 0x67, 0x72, 0x61, 0x64, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05,
	0x67, 0x72, 0x61, 0x64, 0x65, 0x12, 0x32, 0x0a, 0x07, 0x66, 0x61, 0x63, 0x74, 0x6f, 0x72, 0x73,
	0x18, 0x03, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x18, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74,
	0x2e, 0x76, 0x31, 0x2e, 0x48, 0x65, 0x61, 0x6c, 0x74, 0x68, 0x46, 0x61, 0x63, 0x74, 0x6f, 0x72,
	0x52, 0x07, 0x66, 0x61, 0x63, 0x74, 0x6f, 0x72, 0x73, 0x12, 0x28, 0x0a, 0x0f, 0x72, 0x65, 0x63,
	0x6f, 0x6d, 0x6d, 0x65, 0x6e, 0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x18, 0x04, 0x20, 0x03,
	0x28, 0x09, 0x52, 0x0f, 0x72, 0x65, 0x63, 0x6f, 0x6d, 0x6d, 0x65, 0x6e, 0x64, 0x61, 0x74, 0x69,
	0x6f, 0x6e, 0x73, 0x32, 0x9f, 0x0a, 0x0a, 0x0e, 0x46, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x53,
	0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x51, 0x0a, 0x0c, 0x41, 0x6e, 0x61, 0x6c, 0x79, 0x7a,
	0x65, 0x54, 0x72, 0x65, 0x6e, 0x64, 0x12, 0x1f, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74,
	0x2e, 0x76, 0x31, 0x2e, 0x41, 0x6e, 0x61, 0x6c, 0x79, 0x7a, 0x65, 0x54, 0x72, 0x65, 0x6e, 0x64,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x20, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73,
	0x74, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x6e, 0x61, 0x6c, 0x79, 0x7a, 0x65, 0x54, 0x72, 0x65, 0x6e,
	0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x66, 0x0a, 0x13, 0x43, 0x6c, 0x61,
	0x73, 0x73, 0x69, 0x66, 0x79, 0x54, 0x72, 0x61, 0x6e, 0x73, 0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e,
	0x12, 0x26, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6c,
	0x61, 0x73, 0x73, 0x69, 0x66, 0x79, 0x54, 0x72, 0x61, 0x6e, 0x73, 0x61, 0x63, 0x74, 0x69, 0x6f,
	0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x27, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61,
	0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6c, 0x61, 0x73, 0x73, 0x69, 0x66, 0x79, 0x54, 0x72,
	0x61, 0x6e, 0x73, 0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x66, 0x0a, 0x13, 0x4c, 0x65, 0x61, 0x72, 0x6e, 0x43, 0x6c, 0x61, 0x73, 0x73, 0x69,
	0x66, 0x69, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x26, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61,
	0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x65, 0x61, 0x72, 0x6e, 0x43, 0x6c, 0x61, 0x73, 0x73,
	0x69, 0x66, 0x69, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x1a, 0x27, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x65,
	0x61, 0x72, 0x6e, 0x43, 0x6c, 0x61, 0x73, 0x73, 0x69, 0x66, 0x69, 0x63, 0x61, 0x74, 0x69, 0x6f,
	0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x54, 0x0a, 0x0d, 0x44, 0x65, 0x74,
	0x65, 0x63, 0x74, 0x41, 0x6e, 0x6f, 0x6d, 0x61, 0x6c, 0x79, 0x12, 0x20, 0x2e, 0x66, 0x69, 0x6e,
	0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x44, 0x65, 0x74, 0x65, 0x63, 0x74, 0x41, 0x6e,
	0x6f, 0x6d, 0x61, 0x6c, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x21, 0x2e, 0x66,
	0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x44, 0x65, 0x74, 0x65, 0x63, 0x74,
	0x41, 0x6e, 0x6f, 0x6d, 0x61, 0x6c, 0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x5d, 0x0a, 0x10, 0x46, 0x6f, 0x72, 0x65, 0x63, 0x61, 0x73, 0x74, 0x43, 0x61, 0x73, 0x68, 0x46,
	0x6c, 0x6f, 0x77, 0x12, 0x23, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31,
	0x2e, 0x46, 0x6f, 0x72, 0x65, 0x63, 0x61, 0x73, 0x74, 0x43, 0x61, 0x73, 0x68, 0x46, 0x6c, 0x6f,
	0x77, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x24, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61,
	0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x46, 0x6f, 0x72, 0x65, 0x63, 0x61, 0x73, 0x74, 0x43, 0x61,
	0x73, 0x68, 0x46, 0x6c, 0x6f, 0x77, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x5a,
	0x0a, 0x0f, 0x50, 0x72, 0x65, 0x64, 0x69, 0x63, 0x74, 0x45, 0x78, 0x70, 0x65, 0x6e, 0x73, 0x65,
	0x73, 0x12, 0x22, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x50,
	0x72, 0x65, 0x64, 0x69, 0x63, 0x74, 0x45, 0x78, 0x70, 0x65, 0x6e, 0x73, 0x65, 0x73, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x23, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e,
	0x76, 0x31, 0x2e, 0x50, 0x72, 0x65, 0x64, 0x69, 0x63, 0x74, 0x45, 0x78, 0x70, 0x65, 0x6e, 0x73,
	0x65, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x66, 0x0a, 0x13, 0x53, 0x69,
	0x6d, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x53, 0x61, 0x76, 0x69, 0x6e, 0x67, 0x73, 0x52, 0x61, 0x74,
	0x65, 0x12, 0x26, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53,
	0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x53, 0x61, 0x76, 0x69, 0x6e, 0x67, 0x73, 0x52, 0x61,
	0x74, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x27, 0x2e, 0x66, 0x69, 0x6e, 0x63,
	0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x53,
	0x61, 0x76, 0x69, 0x6e, 0x67, 0x73, 0x52, 0x61, 0x74, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x78, 0x0a, 0x19, 0x53, 0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x43, 0x61,
	0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x52, 0x65, 0x64, 0x75, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x12,
	0x2c, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x69, 0x6d,
	0x75, 0x6c, 0x61, 0x74, 0x65, 0x43, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x52, 0x65, 0x64,
	0x75, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2d, 0x2e,
	0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x69, 0x6d, 0x75, 0x6c,
	0x61, 0x74, 0x65, 0x43, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x52, 0x65, 0x64, 0x75, 0x63,
	0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x6f, 0x0a, 0x16,
	0x53, 0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x49, 0x6e, 0x63, 0x6f, 0x6d, 0x65, 0x49, 0x6e,
	0x63, 0x72, 0x65, 0x61, 0x73, 0x65, 0x12, 0x29, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74,
	0x2e, 0x76, 0x31, 0x2e, 0x53, 0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x49, 0x6e, 0x63, 0x6f,
	0x6d, 0x65, 0x49, 0x6e, 0x63, 0x72, 0x65, 0x61, 0x73, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x1a, 0x2a, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53,
	0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x49, 0x6e, 0x63, 0x6f, 0x6d, 0x65, 0x49, 0x6e, 0x63,
	0x72, 0x65, 0x61, 0x73, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x69, 0x0a,
	0x14, 0x53, 0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x47, 0x6f, 0x61, 0x6c, 0x54, 0x69, 0x6d,
	0x65, 0x6c, 0x69, 0x6e, 0x65, 0x12, 0x27, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e,
	0x76, 0x31, 0x2e, 0x53, 0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x47, 0x6f, 0x61, 0x6c, 0x54,
	0x69, 0x6d, 0x65, 0x6c, 0x69, 0x6e, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x28,
	0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x69, 0x6d, 0x75,
	0x6c, 0x61, 0x74, 0x65, 0x47, 0x6f, 0x61, 0x6c, 0x54, 0x69, 0x6d, 0x65, 0x6c, 0x69, 0x6e, 0x65,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x63, 0x0a, 0x12, 0x53, 0x69, 0x6d, 0x75,
	0x6c, 0x61, 0x74, 0x65, 0x52, 0x65, 0x74, 0x69, 0x72, 0x65, 0x6d, 0x65, 0x6e, 0x74, 0x12, 0x25,
	0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x69, 0x6d, 0x75,
	0x6c, 0x61, 0x74, 0x65, 0x52, 0x65, 0x74, 0x69, 0x72, 0x65, 0x6d, 0x65, 0x6e, 0x74, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x26, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e,
	0x76, 0x31, 0x2e, 0x53, 0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x52, 0x65, 0x74, 0x69, 0x72,
	0x65, 0x6d, 0x65, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x5d, 0x0a,
	0x10, 0x43, 0x6f, 0x6d, 0x70, 0x61, 0x72, 0x65, 0x53, 0x63, 0x65, 0x6e, 0x61, 0x72, 0x69, 0x6f,
	0x73, 0x12, 0x23, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x43,
	0x6f, 0x6d, 0x70, 0x61, 0x72, 0x65, 0x53, 0x63, 0x65, 0x6e, 0x61, 0x72, 0x69, 0x6f, 0x73, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x24, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74,
	0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x6d, 0x70, 0x61, 0x72, 0x65, 0x53, 0x63, 0x65, 0x6e, 0x61,
	0x72, 0x69, 0x6f, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x57, 0x0a, 0x0e,
	0x47, 0x65, 0x74, 0x48, 0x65, 0x61, 0x6c, 0x74, 0x68, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x12, 0x21,
	0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x48,
	0x65, 0x61, 0x6c, 0x74, 0x68, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x1a, 0x22, 0x2e, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x47,
	0x65, 0x74, 0x48, 0x65, 0x61, 0x6c, 0x74, 0x68, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42, 0x4f, 0x5a, 0x4d, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e,
	0x63, 0x6f, 0x6d, 0x2f, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2f, 0x66, 0x69, 0x6e, 0x63,
	0x61, 0x73, 0x74, 0x2d, 0x62, 0x61, 0x63, 0x6b, 0x65, 0x6e, 0x64, 0x2f, 0x69, 0x6e, 0x74, 0x65,
	0x72, 0x6e, 0x61, 0x6c, 0x2f, 0x61, 0x64, 0x61, 0x70, 0x74, 0x65, 0x72, 0x2f, 0x67, 0x72, 0x70,
	0x63, 0x2f, 0x66, 0x69, 0x6e, 0x63, 0x61, 0x73, 0x74, 0x2f, 0x76, 0x31, 0x3b, 0x66, 0x69, 0x6e,
	0x63, 0x61, 0x73, 0x74, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_proto_fincast_v1_fincast_proto_rawDescOnce sync.Once
	file_proto_fincast_v1_fincast_proto_rawDescData = file_proto_fincast_v1_fincast_proto_rawDesc
)

func file_proto_fincast_v1_fincast_proto_rawDescGZIP() []byte {
	file_proto_fincast_v1_fincast_proto_rawDescOnce.Do(func() {
		file_proto_fincast_v1_fincast_proto_rawDescData = protoimpl.X.CompressGZIP(file_proto_fincast_v1_fincast_proto_rawDescData)
	})
	return file_proto_fincast_v1_fincast_proto_rawDescData
}

var file_proto_fincast_v1_fincast_proto_msgTypes = make([]protoimpl.MessageInfo, 37)
var file_proto_fincast_v1_fincast_proto_goTypes = []any{
	(*TrendResult)(nil),                       // 0: fincast.v1.TrendResult
	(*AnalyzeTrendRequest)(nil),               // 1: fincast.v1.AnalyzeTrendRequest
	(*AnalyzeTrendResponse)(nil),              // 2: fincast.v1.AnalyzeTrendResponse
	(*ClassifyTransactionRequest)(nil),        // 3: fincast.v1.ClassifyTransactionRequest
	(*ClassificationSuggestion)(nil),          // 4: fincast.v1.ClassificationSuggestion
	(*ClassifyTransactionResponse)(nil),       // 5: fincast.v1.ClassifyTransactionResponse
	(*LearnClassificationRequest)(nil),        // 6: fincast.v1.LearnClassificationRequest
	(*LearnClassificationResponse)(nil),       // 7: fincast.v1.LearnClassificationResponse
	(*DetectAnomalyRequest)(nil),              // 8: fincast.v1.DetectAnomalyRequest
	(*DetectAnomalyResponse)(nil),             // 9: fincast.v1.DetectAnomalyResponse
	(*ForecastCashFlowRequest)(nil),           // 10: fincast.v1.ForecastCashFlowRequest
	(*ForecastPoint)(nil),                     // 11: fincast.v1.ForecastPoint
	(*ForecastCashFlowResponse)(nil),          // 12: fincast.v1.ForecastCashFlowResponse
	(*PredictExpensesRequest)(nil),            // 13: fincast.v1.PredictExpensesRequest
	(*CategoryPrediction)(nil),                // 14: fincast.v1.CategoryPrediction
	(*PredictExpensesResponse)(nil),           // 15: fincast.v1.PredictExpensesResponse
	(*SimulatedMonth)(nil),                    // 16: fincast.v1.SimulatedMonth
	(*SimulationSummary)(nil),                 // 17: fincast.v1.SimulationSummary
	(*SimulationResult)(nil),                  // 18: fincast.v1.SimulationResult
	(*SimulateSavingsRateRequest)(nil),        // 19: fincast.v1.SimulateSavingsRateRequest
	(*SimulateSavingsRateResponse)(nil),       // 20: fincast.v1.SimulateSavingsRateResponse
	(*SimulateCategoryReductionRequest)(nil),  // 21: fincast.v1.SimulateCategoryReductionRequest
	(*SimulateCategoryReductionResponse)(nil), // 22: fincast.v1.SimulateCategoryReductionResponse
	(*SimulateIncomeIncreaseRequest)(nil),     // 23: fincast.v1.SimulateIncomeIncreaseRequest
	(*SimulateIncomeIncreaseResponse)(nil),    // 24: fincast.v1.SimulateIncomeIncreaseResponse
	(*SimulateGoalTimelineRequest)(nil),       // 25: fincast.v1.SimulateGoalTimelineRequest
	(*GoalMonth)(nil),                         // 26: fincast.v1.GoalMonth
	(*SimulateGoalTimelineResponse)(nil),      // 27: fincast.v1.SimulateGoalTimelineResponse
	(*SimulateRetirementRequest)(nil),         // 28: fincast.v1.SimulateRetirementRequest
	(*SimulateRetirementResponse)(nil),        // 29: fincast.v1.SimulateRetirementResponse
	(*ScenarioAdjustment)(nil),                // 30: fincast.v1.ScenarioAdjustment
	(*CompareScenariosRequest)(nil),           // 31: fincast.v1.CompareScenariosRequest
	(*ScenarioComparison)(nil),                // 32: fincast.v1.ScenarioComparison
	(*CompareScenariosResponse)(nil),          // 33: fincast.v1.CompareScenariosResponse
	(*GetHealthScoreRequest)(nil),             // 34: fincast.v1.GetHealthScoreRequest
	(*HealthFactor)(nil),                      // 35: fincast.v1.HealthFactor
	(*GetHealthScoreResponse)(nil),            // 36: fincast.v1.GetHealthScoreResponse
}
var file_proto_fincast_v1_fincast_proto_depIdxs = []int32{
	0,  // 0: fincast.v1.AnalyzeTrendResponse.trend:type_name -> fincast.v1.TrendResult
	4,  // 1: fincast.v1.ClassifyTransactionResponse.suggestions:type_name -> fincast.v1.ClassificationSuggestion
	11, // 2: fincast.v1.ForecastCashFlowResponse.historical:type_name -> fincast.v1.ForecastPoint
	11, // 3: fincast.v1.ForecastCashFlowResponse.forecasts:type_name -> fincast.v1.ForecastPoint
	0,  // 4: fincast.v1.CategoryPrediction.trend:type_name -> fincast.v1.TrendResult
	14, // 5: fincast.v1.PredictExpensesResponse.categories:type_name -> fincast.v1.CategoryPrediction
	16, // 6: fincast.v1.SimulationResult.months:type_name -> fincast.v1.SimulatedMonth
	17, // 7: fincast.v1.SimulationResult.summary:type_name -> fincast.v1.SimulationSummary
	18, // 8: fincast.v1.SimulateSavingsRateResponse.result:type_name -> fincast.v1.SimulationResult
	18, // 9: fincast.v1.SimulateCategoryReductionResponse.before:type_name -> fincast.v1.SimulationResult
	18, // 10: fincast.v1.SimulateCategoryReductionResponse.after:type_name -> fincast.v1.SimulationResult
	18, // 11: fincast.v1.SimulateIncomeIncreaseResponse.before:type_name -> fincast.v1.SimulationResult
	18, // 12: fincast.v1.SimulateIncomeIncreaseResponse.after:type_name -> fincast.v1.SimulationResult
	26, // 13: fincast.v1.SimulateGoalTimelineResponse.schedule:type_name -> fincast.v1.GoalMonth
	30, // 14: fincast.v1.CompareScenariosRequest.adjustments:type_name -> fincast.v1.ScenarioAdjustment
	18, // 15: fincast.v1.ScenarioComparison.result:type_name -> fincast.v1.SimulationResult
	32, // 16: fincast.v1.CompareScenariosResponse.comparisons:type_name -> fincast.v1.ScenarioComparison
	35, // 17: fincast.v1.GetHealthScoreResponse.factors:type_name -> fincast.v1.HealthFactor
	1,  // 18: fincast.v1.FincastService.AnalyzeTrend:input_type -> fincast.v1.AnalyzeTrendRequest
	3,  // 19: fincast.v1.FincastService.ClassifyTransaction:input_type -> fincast.v1.ClassifyTransactionRequest
	6,  // 20: fincast.v1.FincastService.LearnClassification:input_type -> fincast.v1.LearnClassificationRequest
	8,  // 21: fincast.v1.FincastService.DetectAnomaly:input_type -> fincast.v1.DetectAnomalyRequest
	10, // 22: fincast.v1.FincastService.ForecastCashFlow:input_type -> fincast.v1.ForecastCashFlowRequest
	13, // 23: fincast.v1.FincastService.PredictExpenses:input_type -> fincast.v1.PredictExpensesRequest
	19, // 24: fincast.v1.FincastService.SimulateSavingsRate:input_type -> fincast.v1.SimulateSavingsRateRequest
	21, // 25: fincast.v1.FincastService.SimulateCategoryReduction:input_type -> fincast.v1.SimulateCategoryReductionRequest
	23, // 26: fincast.v1.FincastService.SimulateIncomeIncrease:input_type -> fincast.v1.SimulateIncomeIncreaseRequest
	25, // 27: fincast.v1.FincastService.SimulateGoalTimeline:input_type -> fincast.v1.SimulateGoalTimelineRequest
	28, // 28: fincast.v1.FincastService.SimulateRetirement:input_type -> fincast.v1.SimulateRetirementRequest
	31, // 29: fincast.v1.FincastService.CompareScenarios:input_type -> fincast.v1.CompareScenariosRequest
	34, // 30: fincast.v1.FincastService.GetHealthScore:input_type -> fincast.v1.GetHealthScoreRequest
	2,  // 31: fincast.v1.FincastService.AnalyzeTrend:output_type -> fincast.v1.AnalyzeTrendResponse
	5,  // 32: fincast.v1.FincastService.ClassifyTransaction:output_type -> fincast.v1.ClassifyTransactionResponse
	7,  // 33: fincast.v1.FincastService.LearnClassification:output_type -> fincast.v1.LearnClassificationResponse
	9,  // 34: fincast.v1.FincastService.DetectAnomaly:output_type -> fincast.v1.DetectAnomalyResponse
	12, // 35: fincast.v1.FincastService.ForecastCashFlow:output_type -> fincast.v1.ForecastCashFlowResponse
	15, // 36: fincast.v1.FincastService.PredictExpenses:output_type -> fincast.v1.PredictExpensesResponse
	20, // 37: fincast.v1.FincastService.SimulateSavingsRate:output_type -> fincast.v1.SimulateSavingsRateResponse
	22, // 38: fincast.v1.FincastService.SimulateCategoryReduction:output_type -> fincast.v1.SimulateCategoryReductionResponse
	24, // 39: fincast.v1.FincastService.SimulateIncomeIncrease:output_type -> fincast.v1.SimulateIncomeIncreaseResponse
	27, // 40: fincast.v1.FincastService.SimulateGoalTimeline:output_type -> fincast.v1.SimulateGoalTimelineResponse
	29, // 41: fincast.v1.FincastService.SimulateRetirement:output_type -> fincast.v1.SimulateRetirementResponse
	33, // 42: fincast.v1.FincastService.CompareScenarios:output_type -> fincast.v1.CompareScenariosResponse
	36, // 43: fincast.v1.FincastService.GetHealthScore:output_type -> fincast.v1.GetHealthScoreResponse
	31, // [31:44] is the sub-list for method output_type
	18, // [18:31] is the sub-list for method input_type
	18, // [18:18] is the sub-list for extension type_name
	18, // [18:18] is the sub-list for extension extendee
	0,  // [0:18] is the sub-list for field type_name
}

func init() { file_proto_fincast_v1_fincast_proto_init() }
func file_proto_fincast_v1_fincast_proto_init() {
	if File_proto_fincast_v1_fincast_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_proto_fincast_v1_fincast_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   37,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_proto_fincast_v1_fincast_proto_goTypes,
		DependencyIndexes: file_proto_fincast_v1_fincast_proto_depIdxs,
		MessageInfos:      file_proto_fincast_v1_fincast_proto_msgTypes,
	}.Build()
	File_proto_fincast_v1_fincast_proto = out.File
	file_proto_fincast_v1_fincast_proto_rawDesc = nil
	file_proto_fincast_v1_fincast_proto_goTypes = nil
	file_proto_fincast_v1_fincast_proto_depIdxs = nil
}
