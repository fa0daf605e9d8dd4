package job

import "service/internal/entities"

func ToDomain(j *JobDB) *entities.CandidateJob {
	if j == nil {
		return nil
	}
	return &entities.CandidateJob{
		ID:        j.ID,
		OrderID:   j.OrderID,
		StudentID: j.StudentID,
		JobType:   entities.JobTypeTag(j.JobType),
		Volume:    j.Volume,
		Price:     j.Price,
		Pickup: entities.Location{
			Lat:     j.PickupLat,
			Lng:     j.PickupLng,
			Address: j.PickupAddress,
		},
		Dropoff: entities.Location{
			Lat:     j.DropoffLat,
			Lng:     j.DropoffLng,
			Address: j.DropoffAddress,
		},
		ScheduledTime: j.ScheduledTime,
		Status:        entities.JobStatusType(j.Status),
		CreatedAt:     j.CreatedAt,
		UpdatedAt:     j.UpdatedAt,
	}
}

func ToDomainList(jobsDB []JobDB) []entities.CandidateJob {
	if len(jobsDB) == 0 {
		return []entities.CandidateJob{}
	}

	result := make([]entities.CandidateJob, len(jobsDB))
	for i, jobDB := range jobsDB {
		result[i] = *ToDomain(&jobDB)
	}
	return result
}
