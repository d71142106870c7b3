package dto

import "github.com/shopspring/decimal"

// TopProductDTO producto agregado por nombre dentro del día.
type TopProductDTO struct {
	Name  string          `json:"name"`
	Qty   int             `json:"qty"`
	Total decimal.Decimal `json:"total"`
}

// SummaryResponse reporte de un día calendario UTC. Los totales provienen de
// los totales guardados en cada venta, no se recalculan desde las líneas.
type SummaryResponse struct {
	Date        string          `json:"date"`
	TotalSales  int             `json:"totalSales"`
	TotalUSD    decimal.Decimal `json:"totalUSD"`
	TotalVEF    decimal.Decimal `json:"totalVEF"`
	TotalUnits  int             `json:"totalUnits"`
	AvgTicket   decimal.Decimal `json:"avgTicket"`
	TopProducts []TopProductDTO `json:"topProducts"`
}

// RangeBucketDTO subtotal de un día dentro del rango.
type RangeBucketDTO struct {
	Date     string          `json:"date"`
	Count    int             `json:"count"`
	TotalUSD decimal.Decimal `json:"totalUSD"`
	TotalVEF decimal.Decimal `json:"totalVEF"`
}

// RangeResponse reporte por rango de fechas, agrupado por día descendente.
type RangeResponse struct {
	From       string           `json:"from"`
	To         string           `json:"to"`
	TotalSales int              `json:"totalSales"`
	TotalUSD   decimal.Decimal  `json:"totalUSD"`
	ByDate     []RangeBucketDTO `json:"byDate"`
}
