package impl

import (
	"sort"

	"orderservice/internal/domain/entity"
)

type yearMonth struct {
	year  int
	month int
}

// AggregateMonthlyProfit sums (total price - total cost) per creation year and month.
// The result is sorted by year, then month, and is empty (not nil) for no input.
func AggregateMonthlyProfit(orders []*entity.OrderSummary) []*entity.OrderMonthlyProfit {
	byMonth := make(map[yearMonth]*entity.OrderMonthlyProfit)
	for _, order := range orders {
		if order == nil {
			continue
		}

		key := yearMonth{
			year:  order.CreatedDate.Year(),
			month: int(order.CreatedDate.Month()),
		}

		bucket, ok := byMonth[key]
		if !ok {
			bucket = &entity.OrderMonthlyProfit{Year: key.year, Month: key.month}
			byMonth[key] = bucket
		}
		bucket.Profit = bucket.Profit.Add(order.Profit())
	}

	result := make([]*entity.OrderMonthlyProfit, 0, len(byMonth))
	for _, bucket := range byMonth {
		result = append(result, bucket)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year < result[j].Year
		}

		return result[i].Month < result[j].Month
	})

	return result
}
