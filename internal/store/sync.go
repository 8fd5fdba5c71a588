package store

import (
	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/gateway"
	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/models"
)

// AddSale appends the sale and walks its cart, decrementing the
// matching inventory rows. Decrements run against a working copy that
// carries forward, so two cart lines for the same product compound
// (post-sale quantity = old quantity minus the summed line
// quantities). Quantity clamps at zero; an oversell never drives
// inventory negative. One inventory update is replicated per touched
// product, plus the sale row itself.
func (s *Store) AddSale(sale models.Sale) models.Sale {
	if sale.ID == "" {
		sale.ID = newID()
	}
	if sale.Total == 0 {
		var total float64
		for _, line := range sale.Items {
			total += float64(line.Price) * float64(line.Quantity)
		}
		sale.Total = models.Number(total)
	}

	s.mu.Lock()
	s.sales = append(append([]models.Sale{}, s.sales...), sale)

	inv := append([]models.Product{}, s.inventory...)
	touched := make(map[string]bool)
	for _, line := range sale.Items {
		if line.ProductID == "" {
			continue // free-form line, nothing to decrement
		}
		for i := range inv {
			if inv[i].ID != line.ProductID {
				continue
			}
			left := float64(inv[i].Quantity) - float64(line.Quantity)
			if left < 0 {
				left = 0
			}
			inv[i].Quantity = models.Number(left)
			touched[inv[i].ID] = true
			break
		}
	}

	var updates []models.Product
	if len(touched) > 0 {
		s.inventory = inv
		for _, p := range inv {
			if touched[p.ID] {
				updates = append(updates, p)
			}
		}
	}
	s.mu.Unlock()

	s.remote.Replicate(gateway.SheetSales, gateway.ActionAdd, sale)
	for _, p := range updates {
		s.remote.Replicate(gateway.SheetInventory, gateway.ActionUpdate, p)
	}
	return sale
}

// AddPurchase appends the purchase row and folds it into inventory.
// A product matching by id OR by exact name gets its quantity bumped
// and its cost overwritten with the latest unit price (no weighted
// averaging). A product the shop has never stocked is synthesized on
// the spot: random 12-digit barcode, sale price set to cost plus a
// 30% markup.
func (s *Store) AddPurchase(pur models.Purchase) models.Purchase {
	if pur.ID == "" {
		pur.ID = newID()
	}
	if pur.Total == 0 {
		pur.Total = models.Number(float64(pur.Price) * float64(pur.Quantity))
	}

	s.mu.Lock()
	s.purchases = append(append([]models.Purchase{}, s.purchases...), pur)

	inv := append([]models.Product{}, s.inventory...)
	matched := -1
	for i := range inv {
		byID := pur.ProductID != "" && inv[i].ID == pur.ProductID
		byName := pur.ProductName != "" && inv[i].Name == pur.ProductName
		if byID || byName {
			matched = i
			break
		}
	}

	var invAction string
	var invRow models.Product
	if matched >= 0 {
		inv[matched].Quantity += pur.Quantity
		inv[matched].Cost = pur.Price
		inv[matched].LastEntry = pur.Date
		invAction = gateway.ActionUpdate
		invRow = inv[matched]
		s.inventory = inv
	} else {
		invRow = models.Product{
			ID:        newID(),
			Barcode:   randomBarcode(),
			Name:      pur.ProductName,
			Category:  pur.Category,
			Quantity:  pur.Quantity,
			Cost:      pur.Price,
			Price:     models.Number(float64(pur.Price) * 1.3),
			LastEntry: pur.Date,
		}
		invAction = gateway.ActionAdd
		s.inventory = append(inv, invRow)
	}
	s.mu.Unlock()

	s.remote.Replicate(gateway.SheetPurchases, gateway.ActionAdd, pur)
	s.remote.Replicate(gateway.SheetInventory, invAction, invRow)
	return pur
}
