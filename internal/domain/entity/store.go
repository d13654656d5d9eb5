package entity

// Store representa una tienda física de la cadena (tabla stores del warehouse).
// Phone, Manager y StoreType pueden venir vacíos desde la fuente.
type Store struct {
	StoreID   string
	StoreName string
	Address   string
	City      string
	State     string
	ZipCode   string
	Phone     string
	Manager   string
	StoreType string
}

// StoreLocation proyección de identidad y contacto de una tienda; es lo único que
// devuelve la búsqueda de respaldo en otras tiendas.
type StoreLocation struct {
	StoreID   string
	StoreName string
	Address   string
	City      string
	State     string
	ZipCode   string
	Phone     string
}
