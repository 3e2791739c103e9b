package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// CustomerModel is the persistence model for the customers table
type CustomerModel struct {
	BaseModel
	Code                string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name                string          `gorm:"type:varchar(200);not null"`
	Email               string          `gorm:"type:varchar(200)"`
	Phone               string          `gorm:"type:varchar(50)"`
	Balance             decimal.Decimal `gorm:"type:numeric(20,4);not null;default:0"`
	CreditLimit         decimal.Decimal `gorm:"type:numeric(20,4);not null;default:0"`
	AllowCashOnDelivery bool            `gorm:"not null;default:false"`
	AllowStoreCredit    bool            `gorm:"not null;default:false"`
	Status              string          `gorm:"type:varchar(20);not null;default:'active';index"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity
func (m *CustomerModel) ToDomain() *sales.Customer {
	return &sales.Customer{
		BaseEntity:          m.BaseModel.ToDomain(),
		Code:                m.Code,
		Name:                m.Name,
		Email:               m.Email,
		Phone:               m.Phone,
		Balance:             m.Balance,
		CreditLimit:         m.CreditLimit,
		AllowCashOnDelivery: m.AllowCashOnDelivery,
		AllowStoreCredit:    m.AllowStoreCredit,
		Status:              sales.CustomerStatus(m.Status),
	}
}

// FromDomain populates the persistence model from a domain Customer entity
func (m *CustomerModel) FromDomain(c *sales.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Code = c.Code
	m.Name = c.Name
	m.Email = c.Email
	m.Phone = c.Phone
	m.Balance = c.Balance
	m.CreditLimit = c.CreditLimit
	m.AllowCashOnDelivery = c.AllowCashOnDelivery
	m.AllowStoreCredit = c.AllowStoreCredit
	m.Status = string(c.Status)
}

// CustomerModelFromDomain creates a persistence model from a domain Customer entity
func CustomerModelFromDomain(c *sales.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// ProductModel is the persistence model for the products table
type ProductModel struct {
	BaseModel
	SKU           string          `gorm:"column:sku;type:varchar(64);not null;uniqueIndex"`
	Name          string          `gorm:"type:varchar(200);not null"`
	Description   string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:numeric(20,4);not null;default:0"`
	StockQuantity int64           `gorm:"not null;default:0"`
	ImageKey      string          `gorm:"type:varchar(512)"`
	Active        bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity
func (m *ProductModel) ToDomain() *sales.Product {
	return &sales.Product{
		BaseEntity:    m.BaseModel.ToDomain(),
		SKU:           m.SKU,
		Name:          m.Name,
		Description:   m.Description,
		Price:         m.Price,
		StockQuantity: m.StockQuantity,
		ImageKey:      m.ImageKey,
		Active:        m.Active,
	}
}

// ProductModelFromDomain creates a persistence model from a domain Product entity
func ProductModelFromDomain(p *sales.Product) *ProductModel {
	m := &ProductModel{
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		ImageKey:      p.ImageKey,
		Active:        p.Active,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// OrderModel is the persistence model for the orders table
type OrderModel struct {
	BaseModel
	Number        string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	Status        string           `gorm:"type:varchar(20);not null;index"`
	PaymentMethod string           `gorm:"type:varchar(30);not null"`
	Subtotal      decimal.Decimal  `gorm:"type:numeric(20,4);not null;default:0"`
	Discount      decimal.Decimal  `gorm:"type:numeric(20,4);not null;default:0"`
	Tax           decimal.Decimal  `gorm:"type:numeric(20,4);not null;default:0"`
	Total         decimal.Decimal  `gorm:"type:numeric(20,4);not null;default:0"`
	PlacedAt      time.Time        `gorm:"not null;index"`
	Items         []OrderItemModel `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order. Items are
// included only when they were preloaded.
func (m *OrderModel) ToDomain() *sales.Order {
	order := &sales.Order{
		BaseEntity:    m.BaseModel.ToDomain(),
		Number:        m.Number,
		CustomerID:    m.CustomerID,
		Status:        sales.OrderStatus(m.Status),
		PaymentMethod: sales.PaymentMethod(m.PaymentMethod),
		Subtotal:      m.Subtotal,
		Discount:      m.Discount,
		Tax:           m.Tax,
		Total:         m.Total,
		PlacedAt:      m.PlacedAt,
	}
	if m.Items != nil {
		order.Items = make([]sales.OrderItem, len(m.Items))
		for i := range m.Items {
			order.Items[i] = m.Items[i].ToDomain()
		}
	}
	return order
}

// OrderModelFromDomain creates a persistence model from a domain Order
func OrderModelFromDomain(o *sales.Order) *OrderModel {
	m := &OrderModel{
		Number:        o.Number,
		CustomerID:    o.CustomerID,
		Status:        string(o.Status),
		PaymentMethod: string(o.PaymentMethod),
		Subtotal:      o.Subtotal,
		Discount:      o.Discount,
		Tax:           o.Tax,
		Total:         o.Total,
		PlacedAt:      o.PlacedAt,
	}
	m.FromDomainBaseEntity(o.BaseEntity)
	for _, item := range o.Items {
		m.Items = append(m.Items, OrderItemModel{
			ID:          item.ID,
			OrderID:     o.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		})
	}
	return m
}

// OrderItemModel is the persistence model for the order_items table
type OrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    int64           `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	LineTotal   decimal.Decimal `gorm:"type:numeric(20,4);not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem
func (m *OrderItemModel) ToDomain() sales.OrderItem {
	return sales.OrderItem{
		ID:          m.ID,
		OrderID:     m.OrderID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		LineTotal:   m.LineTotal,
	}
}
