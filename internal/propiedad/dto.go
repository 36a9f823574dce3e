package propiedad

// ActualizarPropiedadRequest lleva los campos modificables; los punteros
// a nil se dejan como están (actualización parcial).
type ActualizarPropiedadRequest struct {
	Title        *string        `json:"title"`
	Operation    *Operacion     `json:"operation"`
	PropertyType *TipoPropiedad `json:"propertyType"`
	Price        *float64       `json:"price"`
	Area         *float64       `json:"area"`
	Bedrooms     *int           `json:"bedrooms"`
	Bathrooms    *int           `json:"bathrooms"`
	Address      *string        `json:"address"`
	City         *string        `json:"city"`
	Zone         *string        `json:"zone"`
	Description  *string        `json:"description"`
	Features     *[]string      `json:"features"`
	Images       *[]string      `json:"images"`
	Status       *Estado        `json:"status"`
	AgentID      *string        `json:"agentId"`
}

// AplicarA vuelca los campos presentes sobre la propiedad existente.
func (req *ActualizarPropiedadRequest) AplicarA(p *Propiedad) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Operation != nil {
		p.Operation = *req.Operation
	}
	if req.PropertyType != nil {
		p.PropertyType = *req.PropertyType
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Area != nil {
		p.Area = *req.Area
	}
	if req.Bedrooms != nil {
		p.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		p.Bathrooms = *req.Bathrooms
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.Zone != nil {
		p.Zone = *req.Zone
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Features != nil {
		p.Features = *req.Features
	}
	if req.Images != nil {
		p.Images = *req.Images
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.AgentID != nil {
		p.AgentID = *req.AgentID
	}
}
