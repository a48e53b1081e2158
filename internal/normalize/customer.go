package normalize

import "github.com/Chriss720/me-lleva-la-burger-front/internal/domain"

var (
	customerIDAliases    = []string{"id", "id_cliente"}
	customerFirstAliases = []string{"nombre_cliente", "nombre", "firstName"}
	customerLastAliases  = []string{"apellido_cliente", "apellido", "lastName"}
	customerEmailAliases = []string{"correo_cliente", "correo", "email"}
	customerPhoneAliases = []string{"telefono_cliente", "telefono", "phone"}
	customerRoleAliases  = []string{"rol_cliente", "rol", "role"}
)

// Customer converts a raw customer payload. Nil in, nil out.
func Customer(raw any) *domain.Customer {
	m, ok := asObject(raw)
	if !ok {
		return nil
	}
	return &domain.Customer{
		ID:        firstInt(m, customerIDAliases),
		FirstName: firstString(m, customerFirstAliases),
		LastName:  firstString(m, customerLastAliases),
		Email:     firstString(m, customerEmailAliases),
		Phone:     firstString(m, customerPhoneAliases),
		Role:      firstString(m, customerRoleAliases),
	}
}
