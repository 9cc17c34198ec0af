package dto

import "time"

type MaintenanceDetailsRequest struct {
	ACID              string   `json:"acID"`
	AssignedEmployees []string `json:"assignedEmployees"`
	TimeStart         string   `json:"timeStart"`
	TimeEnd           string   `json:"timeEnd"`
	Status            bool     `json:"status"`
	Summary           string   `json:"summary"`
}

type MaintenanceRequest struct {
	Title   string                    `json:"title"`
	Date    time.Time                 `json:"date"`
	Tasks   []string                  `json:"tasks"`
	Details MaintenanceDetailsRequest `json:"details"`
}

type MaintenanceDetailsUpdateRequest struct {
	AssignedEmployees *[]string `json:"assignedEmployees,omitempty"`
	TimeStart         *string   `json:"timeStart,omitempty"`
	TimeEnd           *string   `json:"timeEnd,omitempty"`
	Status            *bool     `json:"status,omitempty"`
	Summary           *string   `json:"summary,omitempty"`
}

type MaintenanceUpdateRequest struct {
	ID      string
	Title   *string                          `json:"title,omitempty"`
	Date    *time.Time                       `json:"date,omitempty"`
	Tasks   *[]string                        `json:"tasks,omitempty"`
	Details *MaintenanceDetailsUpdateRequest `json:"details,omitempty"`
}
