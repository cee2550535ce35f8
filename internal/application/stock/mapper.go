package stock

import (
	"time"

	"github.com/jcastro/stockapp-api/internal/application/dto"
	"github.com/jcastro/stockapp-api/internal/domain/entity"
)

func toStockResponse(s *entity.Stock) dto.StockResponse {
	out := dto.StockResponse{
		ID:          s.ID,
		StockNo:     s.StockNumber,
		ItemCode:    s.ItemCode,
		ItemName:    s.ItemName,
		Quantity:    s.Quantity,
		Location:    s.Location,
		StoreID:     s.StoreID,
		InStockDate: s.InStockDate.Format(time.DateOnly),
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.Store != nil {
		out.Store = &dto.StoreResponse{
			ID:       s.Store.ID,
			Name:     s.Store.Name,
			Location: s.Store.Location,
		}
	}
	return out
}
