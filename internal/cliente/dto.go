package cliente

// ActualizarClienteRequest lleva los campos modificables; los punteros a
// nil se dejan como están.
type ActualizarClienteRequest struct {
	Name        *string   `json:"name"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	Type        *Tipo     `json:"type"`
	Preferences *string   `json:"preferences"`
	BudgetMin   *float64  `json:"budgetMin"`
	BudgetMax   *float64  `json:"budgetMax"`
	Zones       *[]string `json:"zones"`
	Notes       *string   `json:"notes"`
}

func (req *ActualizarClienteRequest) AplicarA(c *Cliente) {
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Type != nil {
		c.Type = *req.Type
	}
	if req.Preferences != nil {
		c.Preferences = *req.Preferences
	}
	if req.BudgetMin != nil {
		c.BudgetMin = req.BudgetMin
	}
	if req.BudgetMax != nil {
		c.BudgetMax = req.BudgetMax
	}
	if req.Zones != nil {
		c.Zones = *req.Zones
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}
}
