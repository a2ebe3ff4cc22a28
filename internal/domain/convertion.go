package domain

import (
	"github.com/lepetitglacon/moyenne-sub000/internal/entity"
	"github.com/lepetitglacon/moyenne-sub000/internal/model"
	"github.com/lepetitglacon/moyenne-sub000/pkg/enum"
	"github.com/lepetitglacon/moyenne-sub000/pkg/errorx"
)

func convertTags(tags []entity.TagType) []string {
	if len(tags) == 0 {
		return nil
	}

	result := make([]string, len(tags))
	for i, t := range tags {
		result[i] = string(t)
	}

	return result
}

func parseTags(tags []string) ([]entity.TagType, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	result := make([]entity.TagType, len(tags))
	for i, t := range tags {
		tag, err := enum.ToEnum[entity.TagType](t)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid tag %s", t)
		}

		result[i] = tag
	}

	return result, nil
}

func convertBadge(b *entity.Badge) model.Badge {
	return model.Badge{
		Name:        string(b.Name),
		Metadata:    b.Metadata,
		WasNotified: b.WasNotified,
		CreatedAt:   b.CreatedAt,
	}
}

func convertBadgeNames(names []entity.BadgeName) []string {
	result := []string{}
	for _, n := range names {
		result = append(result, string(n))
	}

	return result
}

func convertUser(u *entity.User) model.User {
	if u == nil {
		return model.User{}
	}

	return model.User{ID: u.ID, Name: u.Name}
}
