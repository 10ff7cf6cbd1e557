// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: billscan/v1/billscan.proto

package billscanv1

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

type CreateProfileRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Name            string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	DefaultCurrency string                 `protobuf:"bytes,2,opt,name=default_currency,json=defaultCurrency,proto3" json:"default_currency,omitempty"`
	DefaultLanguage string                 `protobuf:"bytes,3,opt,name=default_language,json=defaultLanguage,proto3" json:"default_language,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateProfileRequest) Reset() {
	*x = CreateProfileRequest{}
	mi := &file_billscan_v1_billscan_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileRequest) ProtoMessage() {}

func (x *CreateProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_billscan_v1_billscan_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileRequest.ProtoReflect.Descriptor instead.
func (*CreateProfileRequest) Descriptor() ([]byte, []int) {
	return file_billscan_v1_billscan_proto_rawDescGZIP(), []int{0}
}

func (x *CreateProfileRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateProfileRequest) GetDefaultCurrency() string {
	if x != nil {
		return x.DefaultCurrency
	}
	return ""
}

func (x *CreateProfileRequest) GetDefaultLanguage() string {
	if x != nil {
		return x.DefaultLanguage
	}
	return ""
}

type Profile struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name            string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	DefaultCurrency string                 `protobuf:"bytes,3,opt,name=default_currency,json=defaultCurrency,proto3" json:"default_currency,omitempty"`
	DefaultLanguage string                 `protobuf:"bytes,4,opt,name=default_language,json=defaultLanguage,proto3" json:"default_language,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Profile) Reset() {
	*x = Profile{}
	mi := &file_billscan_v1_billscan_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Profile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Profile) ProtoMessage() {}

func (x *Profile) ProtoReflect() protoreflect.Message {
	mi := &file_billscan_v1_billscan_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Profile.ProtoReflect.Descriptor instead.
func (*Profile) Descriptor() ([]byte, []int) {
	return file_billscan_v1_billscan_proto_rawDescGZIP(), []int{1}
}

func (x *Profile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Profile) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Profile) GetDefaultCurrency() string {
	if x != nil {
		return x.DefaultCurrency
	}
	return ""
}

func (x *Profile) GetDefaultLanguage() string {
	if x != nil {
		return x.DefaultLanguage
	}
	return ""
}

func (x *Profile) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Profile) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       *Profile               `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileResponse) Reset() {
	*x = CreateProfileResponse{}
	mi := &file_billscan_v1_billscan_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileResponse) ProtoMessage() {}

func (x *CreateProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_billscan_v1_billscan_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileResponse.ProtoReflect.Descriptor instead.
func (*CreateProfileResponse) Descriptor() ([]byte, []int) {
	return file_billscan_v1_billscan_proto_rawDescGZIP(), []int{2}
}

func (x *CreateProfileResponse) GetProfile() *Profile {
	if x != nil {
		return x.Profile
	}
	return nil
}

type SetFieldSchemaRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	ProfileId string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	// JSON array of field schema entries, validated server-side.
	EntriesJson   []byte `protobuf:"bytes,2,opt,name=entries_json,json=entriesJson,proto3" json:"entries_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetFieldSchemaRequest) Reset() {
	*x = SetFieldSchemaRequest{}
	mi := &file_billscan_v1_billscan_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetFieldSchemaRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetFieldSchemaRequest) ProtoMessage() {}

func (x *SetFieldSchemaRequest) ProtoReflect() protoreflect.Message {
	mi := &file_billscan_v1_billscan_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetFieldSchemaRequest.ProtoReflect.Descriptor instead.
func (*SetFieldSchemaRequest) Descriptor() ([]byte, []int) {
	return file_billscan_v1_billscan_proto_rawDescGZIP(), []int{3}
}

func (x *SetFieldSchemaRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *SetFieldSchemaRequest) GetEntriesJson() []byte {
	if x != nil {
		return x.EntriesJson
	}
	return nil
}

type SetFieldSchemaResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Version       int32                  `protobuf:"varint,1,opt,name=version,proto3" json:"version,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetFieldSchemaResponse) Reset() {
	*x = SetFieldSchemaResponse{}
	mi := &file_billscan_v1_billscan_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetFieldSchemaResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetFieldSchemaResponse) ProtoMessage() {}

func (x *SetFieldSchemaResponse) ProtoReflect() protoreflect.Message {
	mi := &file_billscan_v1_billscan_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetFieldSchemaResponse.ProtoReflect.Descriptor instead.
func (*SetFieldSchemaResponse) Descriptor() ([]byte, []int) {
	return file_billscan_v1_billscan_proto_rawDescGZIP(), []int{4}
}

func (x *SetFieldSchemaResponse) GetVersion() int32 {
	if x != nil {
		return x.Version
	}
	return 0
}

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Path          string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_billscan_v1_billscan_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_billscan_v1_billscan_proto_msgTypes[5]
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
	return file_billscan_v1_billscan_proto_rawDescGZIP(), []int{5}
}

func (x *IngestFileRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentId     string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
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
	mi := &file_billscan_v1_billscan_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_billscan_v1_billscan_proto_msgTypes[6]
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
	return file_billscan_v1_billscan_proto_rawDescGZIP(), []int{6}
}

func (x *IngestResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
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
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	RootPath      string                 `protobuf:"bytes,2,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,3,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_billscan_v1_billscan_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_billscan_v1_billscan_proto_msgTypes[7]
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
	return file_billscan_v1_billscan_proto_rawDescGZIP(), []int{7}
}

func (x *IngestDirectoryRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
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
	Files         []*IngestResponse      `protobuf:"bytes,1,rep,name=files,proto3" json:"files,omitempty"`
	Scanned       uint32                 `protobuf:"varint,2,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,3,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,4,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,5,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,6,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_billscan_v1_billscan_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_billscan_v1_billscan_proto_msgTypes[8]
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
	return file_billscan_v1_billscan_proto_rawDescGZIP(), []int{8}
}

func (x *IngestDirectoryResponse) GetFiles() []*IngestResponse {
	if x != nil {
		return x.Files
	}
	return nil
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

type ExtractDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Debug         bool                   `protobuf:"varint,2,opt,name=debug,proto3" json:"debug,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractDocumentRequest) Reset() {
	*x = ExtractDocumentRequest{}
	mi := &file_billscan_v1_billscan_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractDocumentRequest) ProtoMessage() {}

func (x *ExtractDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_billscan_v1_billscan_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractDocumentRequest.ProtoReflect.Descriptor instead.
func (*ExtractDocumentRequest) Descriptor() ([]byte, []int) {
	return file_billscan_v1_billscan_proto_rawDescGZIP(), []int{9}
}

func (x *ExtractDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ExtractDocumentRequest) GetDebug() bool {
	if x != nil {
		return x.Debug
	}
	return false
}

type ExtractBytesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	FileName      string                 `protobuf:"bytes,3,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Language      string                 `protobuf:"bytes,4,opt,name=language,proto3" json:"language,omitempty"`
	Debug         bool                   `protobuf:"varint,5,opt,name=debug,proto3" json:"debug,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractBytesRequest) Reset() {
	*x = ExtractBytesRequest{}
	mi := &file_billscan_v1_billscan_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractBytesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractBytesRequest) ProtoMessage() {}

func (x *ExtractBytesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_billscan_v1_billscan_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractBytesRequest.ProtoReflect.Descriptor instead.
func (*ExtractBytesRequest) Descriptor() ([]byte, []int) {
	return file_billscan_v1_billscan_proto_rawDescGZIP(), []int{10}
}

func (x *ExtractBytesRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ExtractBytesRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ExtractBytesRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *ExtractBytesRequest) GetLanguage() string {
	if x != nil {
		return x.Language
	}
	return ""
}

func (x *ExtractBytesRequest) GetDebug() bool {
	if x != nil {
		return x.Debug
	}
	return false
}

type Bill struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Vendor        string                 `protobuf:"bytes,2,opt,name=vendor,proto3" json:"vendor,omitempty"`
	Amount        float64                `protobuf:"fixed64,3,opt,name=amount,proto3" json:"amount,omitempty"`
	Currency      string                 `protobuf:"bytes,4,opt,name=currency,proto3" json:"currency,omitempty"`
	IssueDate     string                 `protobuf:"bytes,5,opt,name=issue_date,json=issueDate,proto3" json:"issue_date,omitempty"`
	DueDate       string                 `protobuf:"bytes,6,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`
	AccountNumber string                 `protobuf:"bytes,7,opt,name=account_number,json=accountNumber,proto3" json:"account_number,omitempty"`
	InvoiceNumber string                 `protobuf:"bytes,8,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	Category      string                 `protobuf:"bytes,9,opt,name=category,proto3" json:"category,omitempty"`
	// JSON object of schema-defined extras.
	DynamicFieldsJson []byte `protobuf:"bytes,10,opt,name=dynamic_fields_json,json=dynamicFieldsJson,proto3" json:"dynamic_fields_json,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Bill) Reset() {
	*x = Bill{}
	mi := &file_billscan_v1_billscan_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Bill) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Bill) ProtoMessage() {}

func (x *Bill) ProtoReflect() protoreflect.Message {
	mi := &file_billscan_v1_billscan_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Bill.ProtoReflect.Descriptor instead.
func (*Bill) Descriptor() ([]byte, []int) {
	return file_billscan_v1_billscan_proto_rawDescGZIP(), []int{11}
}

func (x *Bill) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Bill) GetVendor() string {
	if x != nil {
		return x.Vendor
	}
	return ""
}

func (x *Bill) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *Bill) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *Bill) GetIssueDate() string {
	if x != nil {
		return x.IssueDate
	}
	return ""
}

func (x *Bill) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *Bill) GetAccountNumber() string {
	if x != nil {
		return x.AccountNumber
	}
	return ""
}

func (x *Bill) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *Bill) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Bill) GetDynamicFieldsJson() []byte {
	if x != nil {
		return x.DynamicFieldsJson
	}
	return nil
}

type ExtractDocumentResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	JobId          string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Success        bool                   `protobuf:"varint,2,opt,name=success,proto3" json:"success,omitempty"`
	Confidence     float32                `protobuf:"fixed32,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	FailureKind    string                 `protobuf:"bytes,4,opt,name=failure_kind,json=failureKind,proto3" json:"failure_kind,omitempty"`
	Error          string                 `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	Bills          []*Bill                `protobuf:"bytes,6,rep,name=bills,proto3" json:"bills,omitempty"`
	DebugTraceJson []byte                 `protobuf:"bytes,7,opt,name=debug_trace_json,json=debugTraceJson,proto3" json:"debug_trace_json,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ExtractDocumentResponse) Reset() {
	*x = ExtractDocumentResponse{}
	mi := &file_billscan_v1_billscan_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractDocumentResponse) ProtoMessage() {}

func (x *ExtractDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_billscan_v1_billscan_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractDocumentResponse.ProtoReflect.Descriptor instead.
func (*ExtractDocumentResponse) Descriptor() ([]byte, []int) {
	return file_billscan_v1_billscan_proto_rawDescGZIP(), []int{12}
}

func (x *ExtractDocumentResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ExtractDocumentResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ExtractDocumentResponse) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ExtractDocumentResponse) GetFailureKind() string {
	if x != nil {
		return x.FailureKind
	}
	return ""
}

func (x *ExtractDocumentResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *ExtractDocumentResponse) GetBills() []*Bill {
	if x != nil {
		return x.Bills
	}
	return nil
}

func (x *ExtractDocumentResponse) GetDebugTraceJson() []byte {
	if x != nil {
		return x.DebugTraceJson
	}
	return nil
}

type ListBillsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, filters due_date
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD
	Limit         int32                  `protobuf:"varint,4,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBillsRequest) Reset() {
	*x = ListBillsRequest{}
	mi := &file_billscan_v1_billscan_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBillsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBillsRequest) ProtoMessage() {}

func (x *ListBillsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_billscan_v1_billscan_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBillsRequest.ProtoReflect.Descriptor instead.
func (*ListBillsRequest) Descriptor() ([]byte, []int) {
	return file_billscan_v1_billscan_proto_rawDescGZIP(), []int{13}
}

func (x *ListBillsRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ListBillsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListBillsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ListBillsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListBillsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bills         []*Bill                `protobuf:"bytes,1,rep,name=bills,proto3" json:"bills,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBillsResponse) Reset() {
	*x = ListBillsResponse{}
	mi := &file_billscan_v1_billscan_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBillsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBillsResponse) ProtoMessage() {}

func (x *ListBillsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_billscan_v1_billscan_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBillsResponse.ProtoReflect.Descriptor instead.
func (*ListBillsResponse) Descriptor() ([]byte, []int) {
	return file_billscan_v1_billscan_proto_rawDescGZIP(), []int{14}
}

func (x *ListBillsResponse) GetBills() []*Bill {
	if x != nil {
		return x.Bills
	}
	return nil
}

type ExportBillsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBillsRequest) Reset() {
	*x = ExportBillsRequest{}
	mi := &file_billscan_v1_billscan_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBillsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBillsRequest) ProtoMessage() {}

func (x *ExportBillsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_billscan_v1_billscan_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBillsRequest.ProtoReflect.Descriptor instead.
func (*ExportBillsRequest) Descriptor() ([]byte, []int) {
	return file_billscan_v1_billscan_proto_rawDescGZIP(), []int{15}
}

func (x *ExportBillsRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ExportBillsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportBillsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportBillsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBillsResponse) Reset() {
	*x = ExportBillsResponse{}
	mi := &file_billscan_v1_billscan_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBillsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBillsResponse) ProtoMessage() {}

func (x *ExportBillsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_billscan_v1_billscan_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBillsResponse.ProtoReflect.Descriptor instead.
func (*ExportBillsResponse) Descriptor() ([]byte, []int) {
	return file_billscan_v1_billscan_proto_rawDescGZIP(), []int{16}
}

func (x *ExportBillsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_billscan_v1_billscan_proto protoreflect.FileDescriptor

const file_billscan_v1_billscan_proto_rawDesc = "" +
	"\n" +
	"\x1abillscan/v1/billscan.proto\x12\vbillscan.v1\"\x80\x01\n" +
	"\x14CreateProfileRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12)\n" +
	"\x10default_currency\x18\x02 \x01(\tR\x0fdefaultCurrency\x12)\n" +
	"\x10default_language\x18\x03 \x01(\tR\x0fdefaultLanguage\"\xc1\x01\n" +
	"\aProfile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12)\n" +
	"\x10default_currency\x18\x03 \x01(\tR\x0fdefaultCurrency\x12)\n" +
	"\x10default_language\x18\x04 \x01(\tR\x0fdefaultLanguage\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"G\n" +
	"\x15CreateProfileResponse\x12.\n" +
	"\aprofile\x18\x01 \x01(\v2\x14.billscan.v1.ProfileR\aprofile\"Y\n" +
	"\x15SetFieldSchemaRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12!\n" +
	"\fentries_json\x18\x02 \x01(\fR\ventriesJson\"2\n" +
	"\x16SetFieldSchemaResponse\x12\x18\n" +
	"\aversion\x18\x01 \x01(\x05R\aversion\"F\n" +
	"\x11IngestFileRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\"\xf2\x01\n" +
	"\x0eIngestResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"u\n" +
	"\x16IngestDirectoryRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\troot_path\x18\x02 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x03 \x01(\bR\n" +
	"skipHidden\"\xda\x01\n" +
	"\x17IngestDirectoryResponse\x121\n" +
	"\x05files\x18\x01 \x03(\v2\x1b.billscan.v1.IngestResponseR\x05files\x12\x18\n" +
	"\ascanned\x18\x02 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x03 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x04 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x05 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x06 \x01(\rR\x06failed\"O\n" +
	"\x16ExtractDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x14\n" +
	"\x05debug\x18\x02 \x01(\bR\x05debug\"\x9d\x01\n" +
	"\x13ExtractBytesRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\x12\x1b\n" +
	"\tfile_name\x18\x03 \x01(\tR\bfileName\x12\x1a\n" +
	"\blanguage\x18\x04 \x01(\tR\blanguage\x12\x14\n" +
	"\x05debug\x18\x05 \x01(\bR\x05debug\"\xb6\x02\n" +
	"\x04Bill\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06vendor\x18\x02 \x01(\tR\x06vendor\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\x01R\x06amount\x12\x1a\n" +
	"\bcurrency\x18\x04 \x01(\tR\bcurrency\x12\x1d\n" +
	"\n" +
	"issue_date\x18\x05 \x01(\tR\tissueDate\x12\x19\n" +
	"\bdue_date\x18\x06 \x01(\tR\adueDate\x12%\n" +
	"\x0eaccount_number\x18\a \x01(\tR\raccountNumber\x12%\n" +
	"\x0einvoice_number\x18\b \x01(\tR\rinvoiceNumber\x12\x1a\n" +
	"\bcategory\x18\t \x01(\tR\bcategory\x12.\n" +
	"\x13dynamic_fields_json\x18\n" +
	" \x01(\fR\x11dynamicFieldsJson\"\xf6\x01\n" +
	"\x17ExtractDocumentResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x18\n" +
	"\asuccess\x18\x02 \x01(\bR\asuccess\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x02R\n" +
	"confidence\x12!\n" +
	"\ffailure_kind\x18\x04 \x01(\tR\vfailureKind\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error\x12'\n" +
	"\x05bills\x18\x06 \x03(\v2\x11.billscan.v1.BillR\x05bills\x12(\n" +
	"\x10debug_trace_json\x18\a \x01(\fR\x0edebugTraceJson\"}\n" +
	"\x10ListBillsRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\x12\x14\n" +
	"\x05limit\x18\x04 \x01(\x05R\x05limit\"<\n" +
	"\x11ListBillsResponse\x12'\n" +
	"\x05bills\x18\x01 \x03(\v2\x11.billscan.v1.BillR\x05bills\"i\n" +
	"\x12ExportBillsRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\")\n" +
	"\x13ExportBillsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xc4\x01\n" +
	"\x0fProfilesService\x12V\n" +
	"\rCreateProfile\x12!.billscan.v1.CreateProfileRequest\x1a\".billscan.v1.CreateProfileResponse\x12Y\n" +
	"\x0eSetFieldSchema\x12\".billscan.v1.SetFieldSchemaRequest\x1a#.billscan.v1.SetFieldSchemaResponse2\xbb\x01\n" +
	"\x10IngestionService\x12I\n" +
	"\n" +
	"IngestFile\x12\x1e.billscan.v1.IngestFileRequest\x1a\x1b.billscan.v1.IngestResponse\x12\\\n" +
	"\x0fIngestDirectory\x12#.billscan.v1.IngestDirectoryRequest\x1a$.billscan.v1.IngestDirectoryResponse2\xc9\x01\n" +
	"\x11ExtractionService\x12\\\n" +
	"\x0fExtractDocument\x12#.billscan.v1.ExtractDocumentRequest\x1a$.billscan.v1.ExtractDocumentResponse\x12V\n" +
	"\fExtractBytes\x12 .billscan.v1.ExtractBytesRequest\x1a$.billscan.v1.ExtractDocumentResponse2Z\n" +
	"\fBillsService\x12J\n" +
	"\tListBills\x12\x1d.billscan.v1.ListBillsRequest\x1a\x1e.billscan.v1.ListBillsResponse2a\n" +
	"\rExportService\x12P\n" +
	"\vExportBills\x12\x1f.billscan.v1.ExportBillsRequest\x1a .billscan.v1.ExportBillsResponseB?Z=github.com/akaraszi/billscan/gen/proto/billscan/v1;billscanv1b\x06proto3"

var (
	file_billscan_v1_billscan_proto_rawDescOnce sync.Once
	file_billscan_v1_billscan_proto_rawDescData []byte
)

func file_billscan_v1_billscan_proto_rawDescGZIP() []byte {
	file_billscan_v1_billscan_proto_rawDescOnce.Do(func() {
		file_billscan_v1_billscan_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_billscan_v1_billscan_proto_rawDesc), len(file_billscan_v1_billscan_proto_rawDesc)))
	})
	return file_billscan_v1_billscan_proto_rawDescData
}

var file_billscan_v1_billscan_proto_msgTypes = make([]protoimpl.MessageInfo, 17)
var file_billscan_v1_billscan_proto_goTypes = []any{
	(*CreateProfileRequest)(nil),    // 0: billscan.v1.CreateProfileRequest
	(*Profile)(nil),                 // 1: billscan.v1.Profile
	(*CreateProfileResponse)(nil),   // 2: billscan.v1.CreateProfileResponse
	(*SetFieldSchemaRequest)(nil),   // 3: billscan.v1.SetFieldSchemaRequest
	(*SetFieldSchemaResponse)(nil),  // 4: billscan.v1.SetFieldSchemaResponse
	(*IngestFileRequest)(nil),       // 5: billscan.v1.IngestFileRequest
	(*IngestResponse)(nil),          // 6: billscan.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),  // 7: billscan.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil), // 8: billscan.v1.IngestDirectoryResponse
	(*ExtractDocumentRequest)(nil),  // 9: billscan.v1.ExtractDocumentRequest
	(*ExtractBytesRequest)(nil),     // 10: billscan.v1.ExtractBytesRequest
	(*Bill)(nil),                    // 11: billscan.v1.Bill
	(*ExtractDocumentResponse)(nil), // 12: billscan.v1.ExtractDocumentResponse
	(*ListBillsRequest)(nil),        // 13: billscan.v1.ListBillsRequest
	(*ListBillsResponse)(nil),       // 14: billscan.v1.ListBillsResponse
	(*ExportBillsRequest)(nil),      // 15: billscan.v1.ExportBillsRequest
	(*ExportBillsResponse)(nil),     // 16: billscan.v1.ExportBillsResponse
}
var file_billscan_v1_billscan_proto_depIdxs = []int32{
	1,  // 0: billscan.v1.CreateProfileResponse.profile:type_name -> billscan.v1.Profile
	6,  // 1: billscan.v1.IngestDirectoryResponse.files:type_name -> billscan.v1.IngestResponse
	11, // 2: billscan.v1.ExtractDocumentResponse.bills:type_name -> billscan.v1.Bill
	11, // 3: billscan.v1.ListBillsResponse.bills:type_name -> billscan.v1.Bill
	0,  // 4: billscan.v1.ProfilesService.CreateProfile:input_type -> billscan.v1.CreateProfileRequest
	3,  // 5: billscan.v1.ProfilesService.SetFieldSchema:input_type -> billscan.v1.SetFieldSchemaRequest
	5,  // 6: billscan.v1.IngestionService.IngestFile:input_type -> billscan.v1.IngestFileRequest
	7,  // 7: billscan.v1.IngestionService.IngestDirectory:input_type -> billscan.v1.IngestDirectoryRequest
	9,  // 8: billscan.v1.ExtractionService.ExtractDocument:input_type -> billscan.v1.ExtractDocumentRequest
	10, // 9: billscan.v1.ExtractionService.ExtractBytes:input_type -> billscan.v1.ExtractBytesRequest
	13, // 10: billscan.v1.BillsService.ListBills:input_type -> billscan.v1.ListBillsRequest
	15, // 11: billscan.v1.ExportService.ExportBills:input_type -> billscan.v1.ExportBillsRequest
	2,  // 12: billscan.v1.ProfilesService.CreateProfile:output_type -> billscan.v1.CreateProfileResponse
	4,  // 13: billscan.v1.ProfilesService.SetFieldSchema:output_type -> billscan.v1.SetFieldSchemaResponse
	6,  // 14: billscan.v1.IngestionService.IngestFile:output_type -> billscan.v1.IngestResponse
	8,  // 15: billscan.v1.IngestionService.IngestDirectory:output_type -> billscan.v1.IngestDirectoryResponse
	12, // 16: billscan.v1.ExtractionService.ExtractDocument:output_type -> billscan.v1.ExtractDocumentResponse
	12, // 17: billscan.v1.ExtractionService.ExtractBytes:output_type -> billscan.v1.ExtractDocumentResponse
	14, // 18: billscan.v1.BillsService.ListBills:output_type -> billscan.v1.ListBillsResponse
	16, // 19: billscan.v1.ExportService.ExportBills:output_type -> billscan.v1.ExportBillsResponse
	12, // [12:20] is the sub-list for method output_type
	4,  // [4:12] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_billscan_v1_billscan_proto_init() }
func file_billscan_v1_billscan_proto_init() {
	if File_billscan_v1_billscan_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_billscan_v1_billscan_proto_rawDesc), len(file_billscan_v1_billscan_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   17,
			NumExtensions: 0,
			NumServices:   5,
		},
		GoTypes:           file_billscan_v1_billscan_proto_goTypes,
		DependencyIndexes: file_billscan_v1_billscan_proto_depIdxs,
		MessageInfos:      file_billscan_v1_billscan_proto_msgTypes,
	}.Build()
	File_billscan_v1_billscan_proto = out.File
	file_billscan_v1_billscan_proto_goTypes = nil
	file_billscan_v1_billscan_proto_depIdxs = nil
}
