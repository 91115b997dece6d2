package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Content reference types used by comments, likes and the admin panel.
const (
	ContentPhoto        = "photos"
	ContentVideo        = "videos"
	ContentJournal      = "journal"
	ContentConsultation = "consultations"
	ContentEvent        = "events"
)

type Photo struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	URL         string    `gorm:"type:text;not null" json:"url"`
	TakenAt     string    `gorm:"size:10" json:"taken_at"`
	Location    string    `gorm:"size:200" json:"location"`
	Author      string    `gorm:"size:20;not null" json:"author"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (p *Photo) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type Video struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	URL         string    `gorm:"type:text;not null" json:"url"`
	Category    string    `gorm:"size:100" json:"category"`
	Author      string    `gorm:"size:20;not null" json:"author"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

type JournalEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Mood      string    `gorm:"size:50" json:"mood"`
	EntryDate string    `gorm:"size:10;not null" json:"entry_date"`
	Author    string    `gorm:"size:20;not null" json:"author"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (j *JournalEntry) TableName() string {
	return "journal_entries"
}

func (j *JournalEntry) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

type Consultation struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Location         string    `gorm:"size:200;not null" json:"location"`
	Practitioner     string    `gorm:"size:200;not null" json:"practitioner"`
	ConsultationDate string    `gorm:"size:10;not null" json:"consultation_date"`
	Time             string    `gorm:"size:10" json:"time"`
	Notes            string    `gorm:"type:text" json:"notes"`
	Author           string    `gorm:"size:20;not null" json:"author"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (c *Consultation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	EventDate   string    `gorm:"size:10;not null" json:"event_date"`
	Time        string    `gorm:"size:10" json:"time"`
	Location    string    `gorm:"size:200" json:"location"`
	Author      string    `gorm:"size:20;not null" json:"author"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
