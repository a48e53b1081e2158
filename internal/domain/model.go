package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart lifecycle states. The backend drives order statuses as free text;
// cart states are the only ones this service reasons about.
const (
	CartStateActive     = "active"
	CartStateCheckedOut = "checked_out"
)

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"nombre_producto"`
	Description string          `json:"descripcion,omitempty"`
	Price       decimal.Decimal `json:"precio"`
	Image       string          `json:"imagen,omitempty"`
	Category    string          `json:"categoria,omitempty"`
}

type CartItem struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"producto_id"`
	Product   *Product        `json:"producto,omitempty"`
	Quantity  int             `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type Cart struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"cliente_id"`
	Items      []CartItem      `json:"items"`
	Total      decimal.Decimal `json:"total"`
	State      string          `json:"estado,omitempty"`
}

// Empty reports whether the cart holds no sellable lines.
func (c *Cart) Empty() bool { return c == nil || len(c.Items) == 0 }

type Order struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"cliente_id"`
	Number     string          `json:"numero_orden,omitempty"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"estado"`
	PlacedAt   time.Time       `json:"fecha_pedido,omitempty"`
	Items      []CartItem      `json:"items,omitempty"`
}

type Payment struct {
	OrderID int64           `json:"id_pedido"`
	Method  string          `json:"metodo"`
	Amount  decimal.Decimal `json:"monto"`
	Status  string          `json:"estado"`
}

type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"nombre_cliente"`
	LastName  string `json:"apellido_cliente"`
	Email     string `json:"correo_cliente"`
	Phone     string `json:"telefono_cliente,omitempty"`
	Role      string `json:"rol_cliente,omitempty"`
}

type Employee struct {
	ID        int64  `json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"correo"`
	Role      string `json:"rol"`
	Active    bool   `json:"activo"`
}

type Ingredient struct {
	ID    int64           `json:"id"`
	Name  string          `json:"nombre"`
	Stock decimal.Decimal `json:"stock"`
	Unit  string          `json:"unidad,omitempty"`
}
