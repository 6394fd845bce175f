package repository

import (
	"context"

	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/repository/dao"
)

var ErrTagNotFound = dao.ErrTagNotFound

type TagDAO interface {
	InsertMuseumTag(ctx context.Context, tag dao.MuseumTag) (dao.MuseumTag, error)
	FindAllMuseumTags(ctx context.Context) ([]dao.MuseumTag, error)
	DeleteMuseumTag(ctx context.Context, id uint) error
	InsertPreferenceTag(ctx context.Context, tag dao.PreferenceTag) (dao.PreferenceTag, error)
	FindAllPreferenceTags(ctx context.Context) ([]dao.PreferenceTag, error)
	UpdatePreferenceTag(ctx context.Context, tag dao.PreferenceTag) (dao.PreferenceTag, error)
	DeletePreferenceTag(ctx context.Context, id uint) error
}

type TagRepository struct {
	dao TagDAO
}

func NewTagRepository(dao TagDAO) *TagRepository {
	return &TagRepository{
		dao: dao,
	}
}

func (r *TagRepository) museumTagDaoToDomain(t dao.MuseumTag) domain.MuseumTag {
	return domain.MuseumTag{
		ID:               t.ID,
		Type:             domain.MuseumTagType(t.Type),
		HistoricalPeriod: t.HistoricalPeriod,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func (r *TagRepository) preferenceTagDaoToDomain(t dao.PreferenceTag) domain.PreferenceTag {
	return domain.PreferenceTag{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *TagRepository) CreateMuseumTag(ctx context.Context, tag domain.MuseumTag) (domain.MuseumTag, error) {
	created, err := r.dao.InsertMuseumTag(ctx, dao.MuseumTag{
		Type:             string(tag.Type),
		HistoricalPeriod: tag.HistoricalPeriod,
	})
	if err != nil {
		return domain.MuseumTag{}, err
	}

	return r.museumTagDaoToDomain(created), nil
}

func (r *TagRepository) FindAllMuseumTags(ctx context.Context) ([]domain.MuseumTag, error) {
	found, err := r.dao.FindAllMuseumTags(ctx)
	if err != nil {
		return nil, err
	}

	tags := make([]domain.MuseumTag, len(found))
	for i, t := range found {
		tags[i] = r.museumTagDaoToDomain(t)
	}

	return tags, nil
}

func (r *TagRepository) DeleteMuseumTag(ctx context.Context, id uint) error {
	return r.dao.DeleteMuseumTag(ctx, id)
}

func (r *TagRepository) CreatePreferenceTag(ctx context.Context, tag domain.PreferenceTag) (domain.PreferenceTag, error) {
	created, err := r.dao.InsertPreferenceTag(ctx, dao.PreferenceTag{
		Name:        tag.Name,
		Description: tag.Description,
	})
	if err != nil {
		return domain.PreferenceTag{}, err
	}

	return r.preferenceTagDaoToDomain(created), nil
}

func (r *TagRepository) FindAllPreferenceTags(ctx context.Context) ([]domain.PreferenceTag, error) {
	found, err := r.dao.FindAllPreferenceTags(ctx)
	if err != nil {
		return nil, err
	}

	tags := make([]domain.PreferenceTag, len(found))
	for i, t := range found {
		tags[i] = r.preferenceTagDaoToDomain(t)
	}

	return tags, nil
}

func (r *TagRepository) UpdatePreferenceTag(ctx context.Context, tag domain.PreferenceTag) (domain.PreferenceTag, error) {
	updated, err := r.dao.UpdatePreferenceTag(ctx, dao.PreferenceTag{
		ID:          tag.ID,
		Name:        tag.Name,
		Description: tag.Description,
		CreatedAt:   tag.CreatedAt,
	})
	if err != nil {
		return domain.PreferenceTag{}, err
	}

	return r.preferenceTagDaoToDomain(updated), nil
}

func (r *TagRepository) DeletePreferenceTag(ctx context.Context, id uint) error {
	return r.dao.DeletePreferenceTag(ctx, id)
}
