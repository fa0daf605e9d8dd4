package mover

import (
	"encoding/json"
	"fmt"

	"service/internal/entities"
)

func ToDomain(m *MoverDB) (*entities.Mover, error) {
	if m == nil {
		return nil, nil
	}

	availability := entities.AvailabilitySchedule{}
	if len(m.Availability) > 0 {
		if err := json.Unmarshal(m.Availability, &availability); err != nil {
			return nil, fmt.Errorf("unmarshal mover %d availability: %w", m.ID, err)
		}
	}

	return &entities.Mover{
		ID:           m.ID,
		Name:         m.Name,
		Phone:        m.Phone,
		Status:       entities.MoverStatusType(m.Status),
		Availability: availability,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

func FromDomainModify(moverModify *entities.MoverModify) (*MoverModifyDB, error) {
	if moverModify == nil {
		return nil, nil
	}
	moverDB := &MoverModifyDB{}

	if moverModify.ID != nil {
		moverDB.ID = moverModify.ID
	}
	if moverModify.Name != nil {
		moverDB.Name = moverModify.Name
	}
	if moverModify.Phone != nil {
		moverDB.Phone = moverModify.Phone
	}
	if moverModify.Status != nil {
		status := moverModify.Status.String()
		moverDB.Status = &status
	}
	if moverModify.Availability != nil {
		raw, err := json.Marshal(*moverModify.Availability)
		if err != nil {
			return nil, fmt.Errorf("marshal availability: %w", err)
		}
		moverDB.Availability = raw
	}

	return moverDB, nil
}

func ToDomainList(moversDB []MoverDB) ([]entities.Mover, error) {
	if len(moversDB) == 0 {
		return []entities.Mover{}, nil
	}

	result := make([]entities.Mover, len(moversDB))
	for i, moverDB := range moversDB {
		moverEntity, err := ToDomain(&moverDB)
		if err != nil {
			return nil, err
		}
		result[i] = *moverEntity
	}
	return result, nil
}
