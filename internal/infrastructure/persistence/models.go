package persistence

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Ingredient is one pantry item
type Ingredient struct {
	ID         string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID     string     `gorm:"type:varchar(64);index;not null" json:"user_id"`
	Name       string     `gorm:"type:varchar(255);not null" json:"name"`
	NameEN     string     `gorm:"column:name_en;type:varchar(255)" json:"name_en"`
	NameID     string     `gorm:"column:name_id;type:varchar(255)" json:"name_id"`
	Quantity   float64    `gorm:"not null;default:0" json:"quantity"`
	Unit       string     `gorm:"type:varchar(32);not null" json:"unit"`
	Category   string     `gorm:"type:varchar(32);not null" json:"category"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Ingredient) TableName() string { return "ingredients" }

// BeforeCreate assigns a UUID when none is set
func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// Recipe is a saved recipe
type Recipe struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID       string    `gorm:"type:varchar(64);index;not null" json:"user_id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Ingredients  []string  `gorm:"serializer:json;type:text" json:"ingredients"`
	Instructions []string  `gorm:"serializer:json;type:text" json:"instructions"`
	PrepTime     int       `json:"prep_time"`
	CookTime     int       `json:"cook_time"`
	Servings     int       `json:"servings"`
	Difficulty   string    `gorm:"type:varchar(16);index" json:"difficulty"`
	Cuisine      string    `gorm:"type:varchar(64);index" json:"cuisine"`
	Tags         []string  `gorm:"serializer:json;type:text" json:"tags"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Recipe) TableName() string { return "recipes" }

// BeforeCreate assigns a UUID when none is set
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ChatMessage is one entry of a user's chat transcript
type ChatMessage struct {
	ID             string            `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID         string            `gorm:"type:varchar(64);not null;index:idx_chat_user_created,priority:1" json:"user_id"`
	SessionID      string            `gorm:"type:varchar(36);not null;index" json:"session_id"`
	MessageType    string            `gorm:"column:message_type;type:varchar(16);not null" json:"message_type"`
	Content        string            `gorm:"type:text;not null" json:"content"`
	Metadata       datatypes.JSONMap `json:"metadata,omitempty"`
	TokensUsed     int               `gorm:"not null;default:0" json:"tokens_used"`
	ResponseTimeMS int64             `gorm:"column:response_time_ms;not null;default:0" json:"response_time_ms"`
	CreatedAt      time.Time         `gorm:"index:idx_chat_user_created,priority:2" json:"created_at"`
}

func (ChatMessage) TableName() string { return "chat_history" }

// BeforeCreate assigns a ULID when none is set, so ids sort in insertion order
func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = ulid.Make().String()
	}
	return nil
}
