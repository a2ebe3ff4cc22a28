package testutil

import (
	"context"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/lepetitglacon/moyenne-sub000/internal/entity"
	"github.com/lepetitglacon/moyenne-sub000/internal/repository"
	"github.com/lepetitglacon/moyenne-sub000/pkg/dateutil"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xcontext"
)

// SampleUser creates a user with a random name. Non-zero fields of init
// overwrite the sample before it is saved.
func SampleUser(ctx context.Context, init *entity.User) entity.User {
	userRepo := repository.NewUserRepository()

	sample := &entity.User{
		ID:   xcontext.SnowflakeNode(ctx).Generate().Int64(),
		Name: uuid.NewString(),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := userRepo.Create(ctx, sample); err != nil {
		panic(err)
	}

	return *sample
}

// SampleEntry creates an entry for the given user, today by default.
func SampleEntry(ctx context.Context, userID int64, date time.Time, rating int) entity.Entry {
	entryRepo := repository.NewEntryRepository()

	if date.IsZero() {
		date = dateutil.Today()
	}

	sample := &entity.Entry{
		Base:    entity.Base{ID: uuid.NewString()},
		UserID:  userID,
		Date:    dateutil.Day(date),
		Rating:  rating,
		Comment: "sample comment",
		Tags:    entity.Array[entity.TagType]{entity.TagWork},
	}

	if _, _, err := entryRepo.Upsert(ctx, sample); err != nil {
		panic(err)
	}

	return *sample
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if overwriteField.Interface() != reflect.Zero(overwriteField.Type()).Interface() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
