// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/akaraszi/billscan/db/ent/schema"
	"github.com/akaraszi/billscan/gen/ent/bill"
	"github.com/akaraszi/billscan/gen/ent/document"
	"github.com/akaraszi/billscan/gen/ent/extractjob"
	"github.com/akaraszi/billscan/gen/ent/fieldschema"
	"github.com/akaraszi/billscan/gen/ent/profile"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	billFields := schema.Bill{}.Fields()
	_ = billFields
	// billDescCurrencyCode is the schema descriptor for currency_code field.
	billDescCurrencyCode := billFields[4].Descriptor()
	// bill.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	bill.CurrencyCodeValidator = billDescCurrencyCode.Validators[0].(func(string) error)
	// billDescCategory is the schema descriptor for category field.
	billDescCategory := billFields[9].Descriptor()
	// bill.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	bill.CategoryValidator = billDescCategory.Validators[0].(func(string) error)
	// billDescCreatedAt is the schema descriptor for created_at field.
	billDescCreatedAt := billFields[12].Descriptor()
	// bill.DefaultCreatedAt holds the default value on creation for the created_at field.
	bill.DefaultCreatedAt = billDescCreatedAt.Default.(func() time.Time)
	// billDescUpdatedAt is the schema descriptor for updated_at field.
	billDescUpdatedAt := billFields[13].Descriptor()
	// bill.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bill.DefaultUpdatedAt = billDescUpdatedAt.Default.(func() time.Time)
	// bill.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	bill.UpdateDefaultUpdatedAt = billDescUpdatedAt.UpdateDefault.(func() time.Time)
	// billDescID is the schema descriptor for id field.
	billDescID := billFields[0].Descriptor()
	// bill.DefaultID holds the default value on creation for the id field.
	bill.DefaultID = billDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescSourcePath is the schema descriptor for source_path field.
	documentDescSourcePath := documentFields[2].Descriptor()
	// document.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	document.SourcePathValidator = documentDescSourcePath.Validators[0].(func(string) error)
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[3].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = documentDescContentHash.Validators[0].(func([]byte) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[4].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescFileExt is the schema descriptor for file_ext field.
	documentDescFileExt := documentFields[5].Descriptor()
	// document.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	document.FileExtValidator = documentDescFileExt.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[6].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[8].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[4].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[6].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescStatus is the schema descriptor for status field.
	extractjobDescStatus := extractjobFields[8].Descriptor()
	// extractjob.DefaultStatus holds the default value on creation for the status field.
	extractjob.DefaultStatus = extractjobDescStatus.Default.(string)
	// extractjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractjob.StatusValidator = extractjobDescStatus.Validators[0].(func(string) error)
	// extractjobDescNeedsReview is the schema descriptor for needs_review field.
	extractjobDescNeedsReview := extractjobFields[12].Descriptor()
	// extractjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extractjob.DefaultNeedsReview = extractjobDescNeedsReview.Default.(bool)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	fieldschemaFields := schema.FieldSchema{}.Fields()
	_ = fieldschemaFields
	// fieldschemaDescVersion is the schema descriptor for version field.
	fieldschemaDescVersion := fieldschemaFields[3].Descriptor()
	// fieldschema.DefaultVersion holds the default value on creation for the version field.
	fieldschema.DefaultVersion = fieldschemaDescVersion.Default.(int)
	// fieldschema.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	fieldschema.VersionValidator = fieldschemaDescVersion.Validators[0].(func(int) error)
	// fieldschemaDescCreatedAt is the schema descriptor for created_at field.
	fieldschemaDescCreatedAt := fieldschemaFields[4].Descriptor()
	// fieldschema.DefaultCreatedAt holds the default value on creation for the created_at field.
	fieldschema.DefaultCreatedAt = fieldschemaDescCreatedAt.Default.(func() time.Time)
	// fieldschemaDescUpdatedAt is the schema descriptor for updated_at field.
	fieldschemaDescUpdatedAt := fieldschemaFields[5].Descriptor()
	// fieldschema.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	fieldschema.DefaultUpdatedAt = fieldschemaDescUpdatedAt.Default.(func() time.Time)
	// fieldschema.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	fieldschema.UpdateDefaultUpdatedAt = fieldschemaDescUpdatedAt.UpdateDefault.(func() time.Time)
	// fieldschemaDescID is the schema descriptor for id field.
	fieldschemaDescID := fieldschemaFields[0].Descriptor()
	// fieldschema.DefaultID holds the default value on creation for the id field.
	fieldschema.DefaultID = fieldschemaDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescDefaultCurrency is the schema descriptor for default_currency field.
	profileDescDefaultCurrency := profileFields[2].Descriptor()
	// profile.DefaultCurrencyValidator is a validator for the "default_currency" field. It is called by the builders before save.
	profile.DefaultCurrencyValidator = func() func(string) error {
		validators := profileDescDefaultCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(default_currency string) error {
			for _, fn := range fns {
				if err := fn(default_currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// profileDescDefaultLanguage is the schema descriptor for default_language field.
	profileDescDefaultLanguage := profileFields[3].Descriptor()
	// profile.DefaultDefaultLanguage holds the default value on creation for the default_language field.
	profile.DefaultDefaultLanguage = profileDescDefaultLanguage.Default.(string)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[4].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[5].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
}
