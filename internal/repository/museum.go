package repository

import (
	"context"

	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/repository/dao"
)

var ErrMuseumNotFound = dao.ErrMuseumNotFound

type MuseumDAO interface {
	Insert(ctx context.Context, museum dao.Museum) (dao.Museum, error)
	FindAll(ctx context.Context) ([]dao.Museum, error)
	FindByID(ctx context.Context, id uint) (dao.Museum, error)
	Update(ctx context.Context, museum dao.Museum) (dao.Museum, error)
	Delete(ctx context.Context, id uint) error
}

type MuseumRepository struct {
	dao MuseumDAO
}

func NewMuseumRepository(dao MuseumDAO) *MuseumRepository {
	return &MuseumRepository{
		dao: dao,
	}
}

func (r *MuseumRepository) domainToDao(m domain.Museum) dao.Museum {
	return dao.Museum{
		ID:                   m.ID,
		Name:                 m.Name,
		Description:          m.Description,
		Pictures:             m.Pictures,
		Location:             m.Location,
		OpeningHours:         m.OpeningHours,
		TicketPriceForeigner: m.TicketPrices.Foreigner,
		TicketPriceNative:    m.TicketPrices.Native,
		TicketPriceStudent:   m.TicketPrices.Student,
		Tags:                 m.Tags,
		Rating:               m.Rating,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func (r *MuseumRepository) daoToDomain(m dao.Museum) domain.Museum {
	return domain.Museum{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Pictures:     m.Pictures,
		Location:     m.Location,
		OpeningHours: m.OpeningHours,
		TicketPrices: domain.TicketPrices{
			Foreigner: m.TicketPriceForeigner,
			Native:    m.TicketPriceNative,
			Student:   m.TicketPriceStudent,
		},
		Tags:      m.Tags,
		Rating:    m.Rating,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *MuseumRepository) Create(ctx context.Context, museum domain.Museum) (domain.Museum, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(museum))
	if err != nil {
		return domain.Museum{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *MuseumRepository) FindAll(ctx context.Context) ([]domain.Museum, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	museums := make([]domain.Museum, len(found))
	for i, m := range found {
		museums[i] = r.daoToDomain(m)
	}

	return museums, nil
}

func (r *MuseumRepository) FindByID(ctx context.Context, id uint) (domain.Museum, error) {
	museum, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Museum{}, err
	}

	return r.daoToDomain(museum), nil
}

func (r *MuseumRepository) Update(ctx context.Context, museum domain.Museum) (domain.Museum, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(museum))
	if err != nil {
		return domain.Museum{}, err
	}

	return r.daoToDomain(updated), nil
}

func (r *MuseumRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}
