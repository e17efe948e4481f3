package models

import (
	"time"
)

// Product maps the productos table of the existing store schema. Column
// names stay Spanish so the binary runs against the legacy database;
// the JSON surface is English.
type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;column:id"   json:"id"`
	Name        string    `gorm:"column:nombre;not null"               json:"name"`
	Description string    `gorm:"column:descripcion"                   json:"description"`
	Price       float64   `gorm:"column:precio;not null"               json:"price"`
	Size        string    `gorm:"column:talla"                         json:"size"`
	Color       string    `gorm:"column:color"                         json:"color"`
	Category    string    `gorm:"column:categoria"                     json:"category"`
	Image       string    `gorm:"column:imagen"                        json:"image"`
	CreatedAt   time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"created_at"`
}

func (Product) TableName() string { return "productos" }

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement;column:id"   json:"id"`
	FullName     string    `gorm:"column:nombre_completo;not null"      json:"full_name"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"    json:"email"`
	PasswordHash string    `gorm:"column:password;not null"             json:"-"`
	CreatedAt    time.Time `gorm:"column:fecha_registro;autoCreateTime" json:"registered_at"`
}

func (User) TableName() string { return "usuarios" }

// Session is one server-side login record. The token is the cookie
// value; the row is removed on logout or on first read past ExpiresAt.
type Session struct {
	Token     string    `gorm:"primaryKey;column:token" json:"token"`
	UserID    uint      `gorm:"index;not null"          json:"user_id"`
	UserName  string    `gorm:"not null"                json:"user_name"`
	ExpiresAt time.Time `gorm:"not null"                json:"expires_at"`
}
