package user

import "time"

type Role string

const (
	RoleSubmitter Role = "submitter"
	RoleReviewer1 Role = "reviewer1"
	RoleReviewer2 Role = "reviewer2"
	RoleReviewer3 Role = "reviewer3"
	RoleApprover  Role = "approver"
	RoleSigner    Role = "signer"
	RoleAdmin     Role = "admin"
)

type User struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex), used in the X-Actor-Id header.
	UserID   string `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Username string `gorm:"size:64;uniqueIndex:ux_users_username" json:"username"`
	Email    string `gorm:"size:255;not null" json:"email"`
	FullName string `gorm:"size:255" json:"full_name"`
	Role     Role   `gorm:"type:enum('submitter','reviewer1','reviewer2','reviewer3','approver','signer','admin');default:'submitter'" json:"role"`
	Unit     string `gorm:"size:128" json:"unit"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
