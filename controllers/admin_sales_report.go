package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
	"github.com/Keerthana-08/GemNest/utils"
)

type salesSummary struct {
	TotalOrders     int
	PaidOrders      int
	GrossRevenue    float64
	TotalDiscounts  float64
	NetRevenue      float64
	TotalItems      int
	TotalCustomers  int
	AverageOrderVal float64
}

// reportWindow resolves a period name to an inclusive date range.
func reportWindow(period string, now time.Time) (time.Time, time.Time, bool) {
	switch period {
	case "day":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		return start, end, true
	case "week":
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		start := end.AddDate(0, 0, -6)
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		return start, end, true
	case "month":
		start := now.AddDate(0, 0, -30).Truncate(24 * time.Hour)
		end := now.Add(24 * time.Hour)
		return start, end, true
	}
	return time.Time{}, time.Time{}, false
}

func summarise(orders []models.Order) salesSummary {
	var summary salesSummary
	customerSet := make(map[uint]bool)
	for _, order := range orders {
		summary.TotalOrders++
		summary.GrossRevenue += order.Subtotal
		summary.TotalDiscounts += order.Discount
		customerSet[order.UserID] = true
		if order.PaymentStatus == models.PaymentStatusCompleted {
			summary.PaidOrders++
		}
		for _, item := range order.OrderItems {
			summary.TotalItems += item.Quantity
		}
	}
	summary.TotalCustomers = len(customerSet)
	if summary.TotalOrders > 0 {
		summary.AverageOrderVal = utils.Round2(summary.GrossRevenue / float64(summary.TotalOrders))
	}
	summary.NetRevenue = utils.Round2(summary.GrossRevenue - summary.TotalDiscounts)
	summary.GrossRevenue = utils.Round2(summary.GrossRevenue)
	summary.TotalDiscounts = utils.Round2(summary.TotalDiscounts)
	return summary
}

// GetSalesReport returns the sales summary for a period as JSON.
func GetSalesReport(c *gin.Context) {
	utils.LogInfo("GetSalesReport called")

	period := c.DefaultQuery("period", "day")
	startDate, endDate, ok := reportWindow(period, time.Now())
	if !ok {
		utils.BadRequest(c, "Period must be day, week, or month", nil)
		return
	}

	var orders []models.Order
	if err := config.DB.Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Preload("OrderItems").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	summary := summarise(orders)
	utils.Success(c, "Sales report generated", gin.H{
		"period": period,
		"from":   startDate.Format("2006-01-02"),
		"to":     endDate.Format("2006-01-02"),
		"report": gin.H{
			"total_orders":     summary.TotalOrders,
			"paid_orders":      summary.PaidOrders,
			"gross_revenue":    fmt.Sprintf("%.2f", summary.GrossRevenue),
			"total_discounts":  fmt.Sprintf("%.2f", summary.TotalDiscounts),
			"net_revenue":      fmt.Sprintf("%.2f", summary.NetRevenue),
			"total_items":      summary.TotalItems,
			"total_customers":  summary.TotalCustomers,
			"avg_order_value":  fmt.Sprintf("%.2f", summary.AverageOrderVal),
		},
	})
}

// DownloadSalesReportExcel streams the sales report for a period as an
// xlsx attachment.
func DownloadSalesReportExcel(c *gin.Context) {
	utils.LogInfo("DownloadSalesReportExcel called")

	period := c.DefaultQuery("period", "day")
	startDate, endDate, ok := reportWindow(period, time.Now())
	if !ok {
		utils.BadRequest(c, "Period must be day, week, or month", nil)
		return
	}

	var orders []models.Order
	if err := config.DB.Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Preload("User").
		Preload("OrderItems").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}
	utils.LogDebug("Retrieved %d orders for Excel report", len(orders))

	summary := summarise(orders)

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Sales Report")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", nil)
		return
	}

	row := sheet.AddRow()
	row.AddCell().SetString("GEMNEST JEWELLERY - Sales Report")
	row = sheet.AddRow()
	row.AddCell().SetString("42 Heritage Lane, Thrissur, Kerala 680001")
	row = sheet.AddRow()
	row.AddCell().SetString("Email: support@gemnest.in")
	row = sheet.AddRow()
	row.AddCell().SetString("Period: " + strings.ToUpper(period) + " | " + startDate.Format("2006-01-02") + " to " + endDate.Format("2006-01-02"))
	sheet.AddRow() // spacing

	headers := []string{"Order ID", "Customer", "Date", "Items", "Subtotal", "Discount", "Offer", "Total", "Payment", "Delivery"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, order := range orders {
		items := 0
		for _, item := range order.OrderItems {
			items += item.Quantity
		}
		row := sheet.AddRow()
		row.AddCell().SetInt(int(order.ID))
		row.AddCell().SetString(order.User.Username)
		row.AddCell().SetString(order.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetInt(items)
		row.AddCell().SetFloat(order.Subtotal)
		row.AddCell().SetFloat(order.Discount)
		row.AddCell().SetString(order.OfferName)
		row.AddCell().SetFloat(order.Total)
		row.AddCell().SetString(order.PaymentStatus)
		row.AddCell().SetString(order.DeliveryStatus)
	}

	sheet.AddRow() // spacing

	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Orders", fmt.Sprintf("%d", summary.TotalOrders)},
		{"Paid Orders", fmt.Sprintf("%d", summary.PaidOrders)},
		{"Gross Revenue", fmt.Sprintf("%.2f", summary.GrossRevenue)},
		{"Total Discounts", fmt.Sprintf("%.2f", summary.TotalDiscounts)},
		{"Net Revenue", fmt.Sprintf("%.2f", summary.NetRevenue)},
		{"Total Items", fmt.Sprintf("%d", summary.TotalItems)},
		{"Total Customers", fmt.Sprintf("%d", summary.TotalCustomers)},
		{"Avg. Order Value", fmt.Sprintf("%.2f", summary.AverageOrderVal)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=sales_report_%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		return
	}
	utils.LogInfo("Generated Excel sales report for period %s", period)
}
