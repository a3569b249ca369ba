// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/networkk/networkk-app/ent/insight"
	"github.com/networkk/networkk-app/ent/page"
	"github.com/networkk/networkk-app/ent/revision"
	"github.com/networkk/networkk-app/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	insightFields := schema.Insight{}.Fields()
	_ = insightFields
	// insightDescSlug is the schema descriptor for slug field.
	insightDescSlug := insightFields[1].Descriptor()
	// insight.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	insight.SlugValidator = func() func(string) error {
		validators := insightDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// insightDescTitle is the schema descriptor for title field.
	insightDescTitle := insightFields[2].Descriptor()
	// insight.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	insight.TitleValidator = func() func(string) error {
		validators := insightDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// insightDescExcerpt is the schema descriptor for excerpt field.
	insightDescExcerpt := insightFields[3].Descriptor()
	// insight.ExcerptValidator is a validator for the "excerpt" field. It is called by the builders before save.
	insight.ExcerptValidator = insightDescExcerpt.Validators[0].(func(string) error)
	// insightDescCategory is the schema descriptor for category field.
	insightDescCategory := insightFields[7].Descriptor()
	// insight.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	insight.CategoryValidator = insightDescCategory.Validators[0].(func(string) error)
	// insightDescReadingTime is the schema descriptor for reading_time field.
	insightDescReadingTime := insightFields[9].Descriptor()
	// insight.DefaultReadingTime holds the default value on creation for the reading_time field.
	insight.DefaultReadingTime = insightDescReadingTime.Default.(int)
	// insight.ReadingTimeValidator is a validator for the "reading_time" field. It is called by the builders before save.
	insight.ReadingTimeValidator = insightDescReadingTime.Validators[0].(func(int) error)
	// insightDescCreatedAt is the schema descriptor for created_at field.
	insightDescCreatedAt := insightFields[14].Descriptor()
	// insight.DefaultCreatedAt holds the default value on creation for the created_at field.
	insight.DefaultCreatedAt = insightDescCreatedAt.Default.(func() time.Time)
	// insightDescUpdatedAt is the schema descriptor for updated_at field.
	insightDescUpdatedAt := insightFields[15].Descriptor()
	// insight.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	insight.DefaultUpdatedAt = insightDescUpdatedAt.Default.(func() time.Time)
	// insight.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	insight.UpdateDefaultUpdatedAt = insightDescUpdatedAt.UpdateDefault.(func() time.Time)
	pageFields := schema.Page{}.Fields()
	_ = pageFields
	// pageDescSlug is the schema descriptor for slug field.
	pageDescSlug := pageFields[1].Descriptor()
	// page.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	page.SlugValidator = func() func(string) error {
		validators := pageDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// pageDescTitle is the schema descriptor for title field.
	pageDescTitle := pageFields[2].Descriptor()
	// page.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	page.TitleValidator = func() func(string) error {
		validators := pageDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// pageDescCreatedAt is the schema descriptor for created_at field.
	pageDescCreatedAt := pageFields[8].Descriptor()
	// page.DefaultCreatedAt holds the default value on creation for the created_at field.
	page.DefaultCreatedAt = pageDescCreatedAt.Default.(func() time.Time)
	// pageDescUpdatedAt is the schema descriptor for updated_at field.
	pageDescUpdatedAt := pageFields[9].Descriptor()
	// page.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	page.DefaultUpdatedAt = pageDescUpdatedAt.Default.(func() time.Time)
	// page.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	page.UpdateDefaultUpdatedAt = pageDescUpdatedAt.UpdateDefault.(func() time.Time)
	revisionFields := schema.Revision{}.Fields()
	_ = revisionFields
	// revisionDescEntityType is the schema descriptor for entity_type field.
	revisionDescEntityType := revisionFields[1].Descriptor()
	// revision.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	revision.EntityTypeValidator = func() func(string) error {
		validators := revisionDescEntityType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(entity_type string) error {
			for _, fn := range fns {
				if err := fn(entity_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// revisionDescVersion is the schema descriptor for version field.
	revisionDescVersion := revisionFields[3].Descriptor()
	// revision.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	revision.VersionValidator = revisionDescVersion.Validators[0].(func(int) error)
	// revisionDescCreatedAt is the schema descriptor for created_at field.
	revisionDescCreatedAt := revisionFields[5].Descriptor()
	// revision.DefaultCreatedAt holds the default value on creation for the created_at field.
	revision.DefaultCreatedAt = revisionDescCreatedAt.Default.(func() time.Time)
}
