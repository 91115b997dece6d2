package dto

import "time"

type AdminRequest struct {
	Action string `json:"action" binding:"required,oneof=update_config manage_content"`

	// update_config
	Key   string `json:"key"`
	Value string `json:"value"`

	// manage_content
	Operation   string                 `json:"operation"`
	ContentType string                 `json:"content_type"`
	ContentID   string                 `json:"content_id"`
	Data        map[string]interface{} `json:"data"`
}

// StatsResponse is the admin dashboard snapshot.
type StatsResponse struct {
	Photos        int64 `json:"photos"`
	Videos        int64 `json:"videos"`
	Journal       int64 `json:"journal"`
	Consultations int64 `json:"consultations"`
	Events        int64 `json:"events"`
	Comments      int64 `json:"comments"`
	Likes         int64 `json:"likes"`
	FamilyMembers int64 `json:"family_members"`
}

type ConfigEntry struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedBy string    `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LogEntry struct {
	ID          string    `json:"id"`
	AdminEmail  string    `json:"admin_email"`
	Action      string    `json:"action"`
	TargetTable string    `json:"target_table"`
	TargetID    string    `json:"target_id"`
	Details     string    `json:"details"`
	CreatedAt   time.Time `json:"created_at"`
}
