// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: parser/v1/parser.proto

package parserv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Project struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Project) Reset() {
	*x = Project{}
	mi := &file_parser_v1_parser_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Project) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Project) ProtoMessage() {}

func (x *Project) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Project.ProtoReflect.Descriptor instead.
func (*Project) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{0}
}

func (x *Project) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Project) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Project) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Project) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Project) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateProjectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProjectRequest) Reset() {
	*x = CreateProjectRequest{}
	mi := &file_parser_v1_parser_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProjectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProjectRequest) ProtoMessage() {}

func (x *CreateProjectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProjectRequest.ProtoReflect.Descriptor instead.
func (*CreateProjectRequest) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{1}
}

func (x *CreateProjectRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateProjectRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type CreateProjectResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Project       *Project               `protobuf:"bytes,1,opt,name=project,proto3" json:"project,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProjectResponse) Reset() {
	*x = CreateProjectResponse{}
	mi := &file_parser_v1_parser_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProjectResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProjectResponse) ProtoMessage() {}

func (x *CreateProjectResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProjectResponse.ProtoReflect.Descriptor instead.
func (*CreateProjectResponse) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{2}
}

func (x *CreateProjectResponse) GetProject() *Project {
	if x != nil {
		return x.Project
	}
	return nil
}

type ListProjectsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProjectsRequest) Reset() {
	*x = ListProjectsRequest{}
	mi := &file_parser_v1_parser_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProjectsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProjectsRequest) ProtoMessage() {}

func (x *ListProjectsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProjectsRequest.ProtoReflect.Descriptor instead.
func (*ListProjectsRequest) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{3}
}

type ListProjectsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Projects      []*Project             `protobuf:"bytes,1,rep,name=projects,proto3" json:"projects,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProjectsResponse) Reset() {
	*x = ListProjectsResponse{}
	mi := &file_parser_v1_parser_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProjectsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProjectsResponse) ProtoMessage() {}

func (x *ListProjectsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProjectsResponse.ProtoReflect.Descriptor instead.
func (*ListProjectsResponse) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{4}
}

func (x *ListProjectsResponse) GetProjects() []*Project {
	if x != nil {
		return x.Projects
	}
	return nil
}

type IngestFileRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	ProjectId string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Path      string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	// CONTRACT or INVOICE
	Kind string `protobuf:"bytes,3,opt,name=kind,proto3" json:"kind,omitempty"`
	// re-queue parsing even when the file content was already ingested
	Force         bool `protobuf:"varint,4,opt,name=force,proto3" json:"force,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_parser_v1_parser_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{5}
}

func (x *IngestFileRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *IngestFileRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *IngestFileRequest) GetForce() bool {
	if x != nil {
		return x.Force
	}
	return false
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	FileId         string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Error          string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_parser_v1_parser_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{6}
}

func (x *IngestResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	RootPath      string                 `protobuf:"bytes,2,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	Kind          string                 `protobuf:"bytes,3,opt,name=kind,proto3" json:"kind,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,4,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_parser_v1_parser_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{7}
}

func (x *IngestDirectoryRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_parser_v1_parser_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{8}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type Contract struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProjectId      string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	ContractNumber string                 `protobuf:"bytes,3,opt,name=contract_number,json=contractNumber,proto3" json:"contract_number,omitempty"`
	ContractName   string                 `protobuf:"bytes,4,opt,name=contract_name,json=contractName,proto3" json:"contract_name,omitempty"`
	PartyA         string                 `protobuf:"bytes,5,opt,name=party_a,json=partyA,proto3" json:"party_a,omitempty"`
	PartyB         string                 `protobuf:"bytes,6,opt,name=party_b,json=partyB,proto3" json:"party_b,omitempty"`
	// decimal string, 2 fraction digits
	Amount        string `protobuf:"bytes,7,opt,name=amount,proto3" json:"amount,omitempty"`
	SignDate      string `protobuf:"bytes,8,opt,name=sign_date,json=signDate,proto3" json:"sign_date,omitempty"`
	EffectiveDate string `protobuf:"bytes,9,opt,name=effective_date,json=effectiveDate,proto3" json:"effective_date,omitempty"`
	ExpiryDate    string `protobuf:"bytes,10,opt,name=expiry_date,json=expiryDate,proto3" json:"expiry_date,omitempty"`
	FilePath      string `protobuf:"bytes,11,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	CreatedAt     string `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string `protobuf:"bytes,13,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Contract) Reset() {
	*x = Contract{}
	mi := &file_parser_v1_parser_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Contract) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Contract) ProtoMessage() {}

func (x *Contract) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Contract.ProtoReflect.Descriptor instead.
func (*Contract) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{9}
}

func (x *Contract) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Contract) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *Contract) GetContractNumber() string {
	if x != nil {
		return x.ContractNumber
	}
	return ""
}

func (x *Contract) GetContractName() string {
	if x != nil {
		return x.ContractName
	}
	return ""
}

func (x *Contract) GetPartyA() string {
	if x != nil {
		return x.PartyA
	}
	return ""
}

func (x *Contract) GetPartyB() string {
	if x != nil {
		return x.PartyB
	}
	return ""
}

func (x *Contract) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *Contract) GetSignDate() string {
	if x != nil {
		return x.SignDate
	}
	return ""
}

func (x *Contract) GetEffectiveDate() string {
	if x != nil {
		return x.EffectiveDate
	}
	return ""
}

func (x *Contract) GetExpiryDate() string {
	if x != nil {
		return x.ExpiryDate
	}
	return ""
}

func (x *Contract) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *Contract) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Contract) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListContractsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContractsRequest) Reset() {
	*x = ListContractsRequest{}
	mi := &file_parser_v1_parser_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContractsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContractsRequest) ProtoMessage() {}

func (x *ListContractsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContractsRequest.ProtoReflect.Descriptor instead.
func (*ListContractsRequest) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{10}
}

func (x *ListContractsRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type ListContractsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contracts     []*Contract            `protobuf:"bytes,1,rep,name=contracts,proto3" json:"contracts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContractsResponse) Reset() {
	*x = ListContractsResponse{}
	mi := &file_parser_v1_parser_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContractsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContractsResponse) ProtoMessage() {}

func (x *ListContractsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContractsResponse.ProtoReflect.Descriptor instead.
func (*ListContractsResponse) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{11}
}

func (x *ListContractsResponse) GetContracts() []*Contract {
	if x != nil {
		return x.Contracts
	}
	return nil
}

type Invoice struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProjectId     string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	InvoiceNumber string                 `protobuf:"bytes,3,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	InvoiceCode   string                 `protobuf:"bytes,4,opt,name=invoice_code,json=invoiceCode,proto3" json:"invoice_code,omitempty"`
	Amount        string                 `protobuf:"bytes,5,opt,name=amount,proto3" json:"amount,omitempty"`
	InvoiceDate   string                 `protobuf:"bytes,6,opt,name=invoice_date,json=invoiceDate,proto3" json:"invoice_date,omitempty"`
	Seller        string                 `protobuf:"bytes,7,opt,name=seller,proto3" json:"seller,omitempty"`
	Buyer         string                 `protobuf:"bytes,8,opt,name=buyer,proto3" json:"buyer,omitempty"`
	TaxAmount     string                 `protobuf:"bytes,9,opt,name=tax_amount,json=taxAmount,proto3" json:"tax_amount,omitempty"`
	Remark        string                 `protobuf:"bytes,10,opt,name=remark,proto3" json:"remark,omitempty"`
	FilePath      string                 `protobuf:"bytes,11,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,13,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Invoice) Reset() {
	*x = Invoice{}
	mi := &file_parser_v1_parser_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Invoice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Invoice) ProtoMessage() {}

func (x *Invoice) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Invoice.ProtoReflect.Descriptor instead.
func (*Invoice) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{12}
}

func (x *Invoice) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Invoice) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *Invoice) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *Invoice) GetInvoiceCode() string {
	if x != nil {
		return x.InvoiceCode
	}
	return ""
}

func (x *Invoice) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *Invoice) GetInvoiceDate() string {
	if x != nil {
		return x.InvoiceDate
	}
	return ""
}

func (x *Invoice) GetSeller() string {
	if x != nil {
		return x.Seller
	}
	return ""
}

func (x *Invoice) GetBuyer() string {
	if x != nil {
		return x.Buyer
	}
	return ""
}

func (x *Invoice) GetTaxAmount() string {
	if x != nil {
		return x.TaxAmount
	}
	return ""
}

func (x *Invoice) GetRemark() string {
	if x != nil {
		return x.Remark
	}
	return ""
}

func (x *Invoice) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *Invoice) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Invoice) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesRequest) Reset() {
	*x = ListInvoicesRequest{}
	mi := &file_parser_v1_parser_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesRequest) ProtoMessage() {}

func (x *ListInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ListInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{13}
}

func (x *ListInvoicesRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type ListInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoices      []*Invoice             `protobuf:"bytes,1,rep,name=invoices,proto3" json:"invoices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesResponse) Reset() {
	*x = ListInvoicesResponse{}
	mi := &file_parser_v1_parser_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesResponse) ProtoMessage() {}

func (x *ListInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ListInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{14}
}

func (x *ListInvoicesResponse) GetInvoices() []*Invoice {
	if x != nil {
		return x.Invoices
	}
	return nil
}

type ParseJob struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FileId        string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	ProjectId     string                 `protobuf:"bytes,3,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Kind          string                 `protobuf:"bytes,4,opt,name=kind,proto3" json:"kind,omitempty"`
	Format        string                 `protobuf:"bytes,5,opt,name=format,proto3" json:"format,omitempty"`
	Status        string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	ParseStatus   string                 `protobuf:"bytes,7,opt,name=parse_status,json=parseStatus,proto3" json:"parse_status,omitempty"`
	NeedsReview   bool                   `protobuf:"varint,8,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,9,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	StartedAt     string                 `protobuf:"bytes,10,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,11,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseJob) Reset() {
	*x = ParseJob{}
	mi := &file_parser_v1_parser_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseJob) ProtoMessage() {}

func (x *ParseJob) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseJob.ProtoReflect.Descriptor instead.
func (*ParseJob) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{15}
}

func (x *ParseJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ParseJob) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *ParseJob) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *ParseJob) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *ParseJob) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *ParseJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ParseJob) GetParseStatus() string {
	if x != nil {
		return x.ParseStatus
	}
	return ""
}

func (x *ParseJob) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *ParseJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ParseJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ParseJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type GetParseJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetParseJobRequest) Reset() {
	*x = GetParseJobRequest{}
	mi := &file_parser_v1_parser_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetParseJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetParseJobRequest) ProtoMessage() {}

func (x *GetParseJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetParseJobRequest.ProtoReflect.Descriptor instead.
func (*GetParseJobRequest) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{16}
}

func (x *GetParseJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetParseJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ParseJob              `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetParseJobResponse) Reset() {
	*x = GetParseJobResponse{}
	mi := &file_parser_v1_parser_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetParseJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetParseJobResponse) ProtoMessage() {}

func (x *GetParseJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetParseJobResponse.ProtoReflect.Descriptor instead.
func (*GetParseJobResponse) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{17}
}

func (x *GetParseJobResponse) GetJob() *ParseJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListParseJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListParseJobsRequest) Reset() {
	*x = ListParseJobsRequest{}
	mi := &file_parser_v1_parser_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListParseJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListParseJobsRequest) ProtoMessage() {}

func (x *ListParseJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListParseJobsRequest.ProtoReflect.Descriptor instead.
func (*ListParseJobsRequest) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{18}
}

func (x *ListParseJobsRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type ListParseJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*ParseJob            `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListParseJobsResponse) Reset() {
	*x = ListParseJobsResponse{}
	mi := &file_parser_v1_parser_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListParseJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListParseJobsResponse) ProtoMessage() {}

func (x *ListParseJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListParseJobsResponse.ProtoReflect.Descriptor instead.
func (*ListParseJobsResponse) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{19}
}

func (x *ListParseJobsResponse) GetJobs() []*ParseJob {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type ExportDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsRequest) Reset() {
	*x = ExportDocumentsRequest{}
	mi := &file_parser_v1_parser_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsRequest) ProtoMessage() {}

func (x *ExportDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{20}
}

func (x *ExportDocumentsRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type ExportDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsResponse) Reset() {
	*x = ExportDocumentsResponse{}
	mi := &file_parser_v1_parser_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsResponse) ProtoMessage() {}

func (x *ExportDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{21}
}

func (x *ExportDocumentsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_parser_v1_parser_proto protoreflect.FileDescriptor

const file_parser_v1_parser_proto_rawDesc = "" +
	"\n" +
	"\x16parser/v1/parser.proto\x12\tparser.v1\"\x8d\x01\n" +
	"\aProject\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x05 \x01(\tR\tupdatedAt\"L\n" +
	"\x14CreateProjectRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\"E\n" +
	"\x15CreateProjectResponse\x12,\n" +
	"\aproject\x18\x01 \x01(\v2\x12.parser.v1.ProjectR\aproject\"\x15\n" +
	"\x13ListProjectsRequest\"F\n" +
	"\x14ListProjectsResponse\x12.\n" +
	"\bprojects\x18\x01 \x03(\v2\x12.parser.v1.ProjectR\bprojects\"p\n" +
	"\x11IngestFileRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\x12\x12\n" +
	"\x04kind\x18\x03 \x01(\tR\x04kind\x12\x14\n" +
	"\x05force\x18\x04 \x01(\bR\x05force\"\xea\x01\n" +
	"\x0eIngestResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"\x89\x01\n" +
	"\x16IngestDirectoryRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x1b\n" +
	"\troot_path\x18\x02 \x01(\tR\brootPath\x12\x12\n" +
	"\x04kind\x18\x03 \x01(\tR\x04kind\x12\x1f\n" +
	"\vskip_hidden\x18\x04 \x01(\bR\n" +
	"skipHidden\"\xdc\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x123\n" +
	"\aresults\x18\x06 \x03(\v2\x19.parser.v1.IngestResponseR\aresults\"\x91\x03\n" +
	"\bContract\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12'\n" +
	"\x0fcontract_number\x18\x03 \x01(\tR\x0econtractNumber\x12#\n" +
	"\rcontract_name\x18\x04 \x01(\tR\fcontractName\x12\x17\n" +
	"\aparty_a\x18\x05 \x01(\tR\x06partyA\x12\x17\n" +
	"\aparty_b\x18\x06 \x01(\tR\x06partyB\x12\x16\n" +
	"\x06amount\x18\a \x01(\tR\x06amount\x12\x1b\n" +
	"\tsign_date\x18\b \x01(\tR\bsignDate\x12%\n" +
	"\x0eeffective_date\x18\t \x01(\tR\reffectiveDate\x12\x1f\n" +
	"\vexpiry_date\x18\n" +
	" \x01(\tR\n" +
	"expiryDate\x12\x1b\n" +
	"\tfile_path\x18\v \x01(\tR\bfilePath\x12\x1d\n" +
	"\n" +
	"created_at\x18\f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\r \x01(\tR\tupdatedAt\"5\n" +
	"\x14ListContractsRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\"J\n" +
	"\x15ListContractsResponse\x121\n" +
	"\tcontracts\x18\x01 \x03(\v2\x13.parser.v1.ContractR\tcontracts\"\xfd\x02\n" +
	"\aInvoice\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12%\n" +
	"\x0einvoice_number\x18\x03 \x01(\tR\rinvoiceNumber\x12!\n" +
	"\finvoice_code\x18\x04 \x01(\tR\vinvoiceCode\x12\x16\n" +
	"\x06amount\x18\x05 \x01(\tR\x06amount\x12!\n" +
	"\finvoice_date\x18\x06 \x01(\tR\vinvoiceDate\x12\x16\n" +
	"\x06seller\x18\a \x01(\tR\x06seller\x12\x14\n" +
	"\x05buyer\x18\b \x01(\tR\x05buyer\x12\x1d\n" +
	"\n" +
	"tax_amount\x18\t \x01(\tR\ttaxAmount\x12\x16\n" +
	"\x06remark\x18\n" +
	" \x01(\tR\x06remark\x12\x1b\n" +
	"\tfile_path\x18\v \x01(\tR\bfilePath\x12\x1d\n" +
	"\n" +
	"created_at\x18\f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\r \x01(\tR\tupdatedAt\"4\n" +
	"\x13ListInvoicesRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\"F\n" +
	"\x14ListInvoicesResponse\x12.\n" +
	"\binvoices\x18\x01 \x03(\v2\x12.parser.v1.InvoiceR\binvoices\"\xc1\x02\n" +
	"\bParseJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x03 \x01(\tR\tprojectId\x12\x12\n" +
	"\x04kind\x18\x04 \x01(\tR\x04kind\x12\x16\n" +
	"\x06format\x18\x05 \x01(\tR\x06format\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12!\n" +
	"\fparse_status\x18\a \x01(\tR\vparseStatus\x12!\n" +
	"\fneeds_review\x18\b \x01(\bR\vneedsReview\x12#\n" +
	"\rerror_message\x18\t \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"started_at\x18\n" +
	" \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\v \x01(\tR\n" +
	"finishedAt\"+\n" +
	"\x12GetParseJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"<\n" +
	"\x13GetParseJobResponse\x12%\n" +
	"\x03job\x18\x01 \x01(\v2\x13.parser.v1.ParseJobR\x03job\"5\n" +
	"\x14ListParseJobsRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\"@\n" +
	"\x15ListParseJobsResponse\x12'\n" +
	"\x04jobs\x18\x01 \x03(\v2\x13.parser.v1.ParseJobR\x04jobs\"7\n" +
	"\x16ExportDocumentsRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\"-\n" +
	"\x17ExportDocumentsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xb6\x01\n" +
	"\x0fProjectsService\x12R\n" +
	"\rCreateProject\x12\x1f.parser.v1.CreateProjectRequest\x1a .parser.v1.CreateProjectResponse\x12O\n" +
	"\fListProjects\x12\x1e.parser.v1.ListProjectsRequest\x1a\x1f.parser.v1.ListProjectsResponse2\xb3\x01\n" +
	"\x10IngestionService\x12E\n" +
	"\n" +
	"IngestFile\x12\x1c.parser.v1.IngestFileRequest\x1a\x19.parser.v1.IngestResponse\x12X\n" +
	"\x0fIngestDirectory\x12!.parser.v1.IngestDirectoryRequest\x1a\".parser.v1.IngestDirectoryResponse2\xd9\x02\n" +
	"\x10DocumentsService\x12R\n" +
	"\rListContracts\x12\x1f.parser.v1.ListContractsRequest\x1a .parser.v1.ListContractsResponse\x12O\n" +
	"\fListInvoices\x12\x1e.parser.v1.ListInvoicesRequest\x1a\x1f.parser.v1.ListInvoicesResponse\x12L\n" +
	"\vGetParseJob\x12\x1d.parser.v1.GetParseJobRequest\x1a\x1e.parser.v1.GetParseJobResponse\x12R\n" +
	"\rListParseJobs\x12\x1f.parser.v1.ListParseJobsRequest\x1a .parser.v1.ListParseJobsResponse2i\n" +
	"\rExportService\x12X\n" +
	"\x0fExportDocuments\x12!.parser.v1.ExportDocumentsRequest\x1a\".parser.v1.ExportDocumentsResponseBBZ@github.com/zhenweng/contract-parser/gen/proto/parser/v1;parserv1b\x06proto3"

var (
	file_parser_v1_parser_proto_rawDescOnce sync.Once
	file_parser_v1_parser_proto_rawDescData []byte
)

func file_parser_v1_parser_proto_rawDescGZIP() []byte {
	file_parser_v1_parser_proto_rawDescOnce.Do(func() {
		file_parser_v1_parser_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_parser_v1_parser_proto_rawDesc), len(file_parser_v1_parser_proto_rawDesc)))
	})
	return file_parser_v1_parser_proto_rawDescData
}

var file_parser_v1_parser_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_parser_v1_parser_proto_goTypes = []any{
	(*Project)(nil),                 // 0: parser.v1.Project
	(*CreateProjectRequest)(nil),    // 1: parser.v1.CreateProjectRequest
	(*CreateProjectResponse)(nil),   // 2: parser.v1.CreateProjectResponse
	(*ListProjectsRequest)(nil),     // 3: parser.v1.ListProjectsRequest
	(*ListProjectsResponse)(nil),    // 4: parser.v1.ListProjectsResponse
	(*IngestFileRequest)(nil),       // 5: parser.v1.IngestFileRequest
	(*IngestResponse)(nil),          // 6: parser.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),  // 7: parser.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil), // 8: parser.v1.IngestDirectoryResponse
	(*Contract)(nil),                // 9: parser.v1.Contract
	(*ListContractsRequest)(nil),    // 10: parser.v1.ListContractsRequest
	(*ListContractsResponse)(nil),   // 11: parser.v1.ListContractsResponse
	(*Invoice)(nil),                 // 12: parser.v1.Invoice
	(*ListInvoicesRequest)(nil),     // 13: parser.v1.ListInvoicesRequest
	(*ListInvoicesResponse)(nil),    // 14: parser.v1.ListInvoicesResponse
	(*ParseJob)(nil),                // 15: parser.v1.ParseJob
	(*GetParseJobRequest)(nil),      // 16: parser.v1.GetParseJobRequest
	(*GetParseJobResponse)(nil),     // 17: parser.v1.GetParseJobResponse
	(*ListParseJobsRequest)(nil),    // 18: parser.v1.ListParseJobsRequest
	(*ListParseJobsResponse)(nil),   // 19: parser.v1.ListParseJobsResponse
	(*ExportDocumentsRequest)(nil),  // 20: parser.v1.ExportDocumentsRequest
	(*ExportDocumentsResponse)(nil), // 21: parser.v1.ExportDocumentsResponse
}
var file_parser_v1_parser_proto_depIdxs = []int32{
	0,  // 0: parser.v1.CreateProjectResponse.project:type_name -> parser.v1.Project
	0,  // 1: parser.v1.ListProjectsResponse.projects:type_name -> parser.v1.Project
	6,  // 2: parser.v1.IngestDirectoryResponse.results:type_name -> parser.v1.IngestResponse
	9,  // 3: parser.v1.ListContractsResponse.contracts:type_name -> parser.v1.Contract
	12, // 4: parser.v1.ListInvoicesResponse.invoices:type_name -> parser.v1.Invoice
	15, // 5: parser.v1.GetParseJobResponse.job:type_name -> parser.v1.ParseJob
	15, // 6: parser.v1.ListParseJobsResponse.jobs:type_name -> parser.v1.ParseJob
	1,  // 7: parser.v1.ProjectsService.CreateProject:input_type -> parser.v1.CreateProjectRequest
	3,  // 8: parser.v1.ProjectsService.ListProjects:input_type -> parser.v1.ListProjectsRequest
	5,  // 9: parser.v1.IngestionService.IngestFile:input_type -> parser.v1.IngestFileRequest
	7,  // 10: parser.v1.IngestionService.IngestDirectory:input_type -> parser.v1.IngestDirectoryRequest
	10, // 11: parser.v1.DocumentsService.ListContracts:input_type -> parser.v1.ListContractsRequest
	13, // 12: parser.v1.DocumentsService.ListInvoices:input_type -> parser.v1.ListInvoicesRequest
	16, // 13: parser.v1.DocumentsService.GetParseJob:input_type -> parser.v1.GetParseJobRequest
	18, // 14: parser.v1.DocumentsService.ListParseJobs:input_type -> parser.v1.ListParseJobsRequest
	20, // 15: parser.v1.ExportService.ExportDocuments:input_type -> parser.v1.ExportDocumentsRequest
	2,  // 16: parser.v1.ProjectsService.CreateProject:output_type -> parser.v1.CreateProjectResponse
	4,  // 17: parser.v1.ProjectsService.ListProjects:output_type -> parser.v1.ListProjectsResponse
	6,  // 18: parser.v1.IngestionService.IngestFile:output_type -> parser.v1.IngestResponse
	8,  // 19: parser.v1.IngestionService.IngestDirectory:output_type -> parser.v1.IngestDirectoryResponse
	11, // 20: parser.v1.DocumentsService.ListContracts:output_type -> parser.v1.ListContractsResponse
	14, // 21: parser.v1.DocumentsService.ListInvoices:output_type -> parser.v1.ListInvoicesResponse
	17, // 22: parser.v1.DocumentsService.GetParseJob:output_type -> parser.v1.GetParseJobResponse
	19, // 23: parser.v1.DocumentsService.ListParseJobs:output_type -> parser.v1.ListParseJobsResponse
	21, // 24: parser.v1.ExportService.ExportDocuments:output_type -> parser.v1.ExportDocumentsResponse
	16, // [16:25] is the sub-list for method output_type
	7,  // [7:16] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_parser_v1_parser_proto_init() }
func file_parser_v1_parser_proto_init() {
	if File_parser_v1_parser_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_parser_v1_parser_proto_rawDesc), len(file_parser_v1_parser_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_parser_v1_parser_proto_goTypes,
		DependencyIndexes: file_parser_v1_parser_proto_depIdxs,
		MessageInfos:      file_parser_v1_parser_proto_msgTypes,
	}.Build()
	File_parser_v1_parser_proto = out.File
	file_parser_v1_parser_proto_goTypes = nil
	file_parser_v1_parser_proto_depIdxs = nil
}
