package dto

import (
	"time"

	"github.com/adiwijaya/ac-maintenance-service/internal/domain"
)

type EmployeeRef struct {
	ID        string `json:"_id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

type MaintenanceResponse struct {
	ID               string                    `json:"_id"`
	Title            string                    `json:"title"`
	Date             time.Time                 `json:"date"`
	Tasks            []string                  `json:"tasks"`
	ACID             string                    `json:"acID"`
	AssignedEmployee []EmployeeRef             `json:"assignedEmployee"`
	Details          domain.MaintenanceDetails `json:"details"`
	CreatedAt        time.Time                 `json:"createdAt"`
	UpdatedAt        time.Time                 `json:"updatedAt"`
}

type ACDetailsResponse struct {
	Name               string                           `json:"name"`
	Location           string                           `json:"location"`
	Watts              int64                            `json:"watts"`
	MaintenanceHistory []domain.MaintenanceHistoryEntry `json:"maintenanceHistory"`
}

type MaintenanceDetailResponse struct {
	MaintenanceResponse
	ACDetails ACDetailsResponse `json:"acDetails"`
}

type EmployeeStatisticsResponse struct {
	ID               string         `json:"_id"`
	Name             string         `json:"name"`
	TotalMaintenance int            `json:"totalMaintenance"`
	TaskCounts       map[string]int `json:"taskCounts"`
}
