package domain

import "time"

type ProfileRole string

const (
	RoleComum ProfileRole = "COMUM"
	RoleAutor ProfileRole = "AUTOR"
	RoleAdmin ProfileRole = "ADMIN"
)

func (r ProfileRole) Valid() bool {
	switch r {
	case RoleComum, RoleAutor, RoleAdmin:
		return true
	}
	return false
}

// states holds the 27 Brazilian federative unit codes.
var states = map[string]bool{
	"AC": true, "AL": true, "AP": true, "AM": true, "BA": true, "CE": true,
	"DF": true, "ES": true, "GO": true, "MA": true, "MT": true, "MS": true,
	"MG": true, "PA": true, "PB": true, "PR": true, "PE": true, "PI": true,
	"RJ": true, "RN": true, "RS": true, "RO": true, "RR": true, "SC": true,
	"SP": true, "SE": true, "TO": true,
}

// ValidState reports whether code is a known federative unit.
// The empty string is allowed because state is optional everywhere.
func ValidState(code string) bool {
	return code == "" || states[code]
}

type User struct {
	ID           int64       `json:"id" gorm:"primaryKey"`
	Username     string      `json:"username" gorm:"uniqueIndex;not null"`
	Email        string      `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string      `json:"-" gorm:"not null"`
	Profile      ProfileRole `json:"profile" gorm:"default:COMUM"`
	State        string      `json:"state,omitempty" gorm:"size:2"`
	AvatarURL    string      `json:"avatar_url,omitempty"`
	IsActive     bool        `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Follow is a directed edge in the follow graph. The (follower, followee)
// pair is unique so adding an existing edge is a no-op at the service level.
type Follow struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	FollowerID int64     `json:"follower_id" gorm:"not null;index;uniqueIndex:idx_follower_followee"`
	FolloweeID int64     `json:"followee_id" gorm:"not null;index;uniqueIndex:idx_follower_followee"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Follow) TableName() string { return "follows" }
