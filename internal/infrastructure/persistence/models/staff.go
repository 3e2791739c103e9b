package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/staff"
	"github.com/shopspring/decimal"
)

// EmployeeModel is the persistence model for the employees table
type EmployeeModel struct {
	BaseModel
	Code        string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	UserID      string          `gorm:"type:varchar(100);index"`
	FullName    string          `gorm:"type:varchar(200);not null"`
	Email       string          `gorm:"type:varchar(200)"`
	Department  string          `gorm:"type:varchar(100);index"`
	Position    string          `gorm:"type:varchar(100)"`
	Salary      decimal.Decimal `gorm:"type:numeric(20,4);not null;default:0"`
	BankAccount string          `gorm:"type:varchar(64)"`
	Status      string          `gorm:"type:varchar(20);not null;default:'active'"`
	HiredAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts the persistence model to a domain Employee entity
func (m *EmployeeModel) ToDomain() *staff.Employee {
	return &staff.Employee{
		BaseEntity:  m.BaseModel.ToDomain(),
		Code:        m.Code,
		UserID:      m.UserID,
		FullName:    m.FullName,
		Email:       m.Email,
		Department:  m.Department,
		Position:    m.Position,
		Salary:      m.Salary,
		BankAccount: m.BankAccount,
		Status:      staff.EmployeeStatus(m.Status),
		HiredAt:     m.HiredAt,
	}
}

// EmployeeModelFromDomain creates a persistence model from a domain Employee entity
func EmployeeModelFromDomain(e *staff.Employee) *EmployeeModel {
	m := &EmployeeModel{
		Code:        e.Code,
		UserID:      e.UserID,
		FullName:    e.FullName,
		Email:       e.Email,
		Department:  e.Department,
		Position:    e.Position,
		Salary:      e.Salary,
		BankAccount: e.BankAccount,
		Status:      string(e.Status),
		HiredAt:     e.HiredAt,
	}
	m.FromDomainBaseEntity(e.BaseEntity)
	return m
}

// PayrollRunModel is the persistence model for the payroll_runs table
type PayrollRunModel struct {
	BaseModel
	Period     string          `gorm:"type:varchar(7);not null;uniqueIndex"`
	Status     string          `gorm:"type:varchar(20);not null"`
	TotalGross decimal.Decimal `gorm:"type:numeric(20,4);not null;default:0"`
	TotalNet   decimal.Decimal `gorm:"type:numeric(20,4);not null;default:0"`
	PaidAt     *time.Time
}

// TableName returns the table name for GORM
func (PayrollRunModel) TableName() string {
	return "payroll_runs"
}

// ToDomain converts the persistence model to a domain PayrollRun
func (m *PayrollRunModel) ToDomain() *staff.PayrollRun {
	return &staff.PayrollRun{
		BaseEntity: m.BaseModel.ToDomain(),
		Period:     m.Period,
		Status:     staff.PayrollStatus(m.Status),
		TotalGross: m.TotalGross,
		TotalNet:   m.TotalNet,
		PaidAt:     m.PaidAt,
	}
}

// PayrollRunModelFromDomain creates a persistence model from a domain PayrollRun
func PayrollRunModelFromDomain(r *staff.PayrollRun) *PayrollRunModel {
	m := &PayrollRunModel{
		Period:     r.Period,
		Status:     string(r.Status),
		TotalGross: r.TotalGross,
		TotalNet:   r.TotalNet,
		PaidAt:     r.PaidAt,
	}
	m.FromDomainBaseEntity(r.BaseEntity)
	return m
}

// PayslipModel is the persistence model for the payslips table
type PayslipModel struct {
	BaseModel
	PayrollRunID uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Gross        decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	Deductions   decimal.Decimal `gorm:"type:numeric(20,4);not null;default:0"`
	Net          decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	DocumentKey  string          `gorm:"type:varchar(512)"`
}

// TableName returns the table name for GORM
func (PayslipModel) TableName() string {
	return "payslips"
}

// ToDomain converts the persistence model to a domain Payslip
func (m *PayslipModel) ToDomain() *staff.Payslip {
	return &staff.Payslip{
		BaseEntity:   m.BaseModel.ToDomain(),
		PayrollRunID: m.PayrollRunID,
		EmployeeID:   m.EmployeeID,
		Gross:        m.Gross,
		Deductions:   m.Deductions,
		Net:          m.Net,
		DocumentKey:  m.DocumentKey,
	}
}

// PayslipModelFromDomain creates a persistence model from a domain Payslip
func PayslipModelFromDomain(p *staff.Payslip) *PayslipModel {
	m := &PayslipModel{
		PayrollRunID: p.PayrollRunID,
		EmployeeID:   p.EmployeeID,
		Gross:        p.Gross,
		Deductions:   p.Deductions,
		Net:          p.Net,
		DocumentKey:  p.DocumentKey,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}
