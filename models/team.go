package models

import (
	"time"
)

// Team groups users for shared stats. TotalPoints is a denormalized counter
// kept current by the team points worker, not derived on read.
type Team struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	CaptainID   string    `json:"captain_id"`
	TotalPoints int       `json:"total_points" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Membership lives in team_members; MemberIDs is filled from it when a
	// team is serialized.
	Members   []TeamMember `json:"-" gorm:"foreignKey:TeamID"`
	MemberIDs []string     `json:"member_ids" gorm:"-"`
}

// TeamMember models membership as a genuine set: the composite primary key
// makes a duplicate (team, user) pair impossible at the store layer, so no
// call site has to check-then-append.
type TeamMember struct {
	TeamID   string    `json:"team_id" gorm:"primaryKey"`
	UserID   string    `json:"user_id" gorm:"primaryKey"`
	JoinedAt time.Time `json:"joined_at" gorm:"autoCreateTime"`
}

// FillMemberIDs projects the loaded membership rows into the member_ids
// field used by the JSON representation.
func (t *Team) FillMemberIDs() {
	ids := make([]string, len(t.Members))
	for i, m := range t.Members {
		ids[i] = m.UserID
	}
	t.MemberIDs = ids
}
