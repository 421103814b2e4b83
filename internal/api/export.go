package api

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"zorservice/internal/constants"
)

// ExportOrdersHandler отдает заявки за период файлом Excel.
// Параметры периода те же, что у GetOrdersHandler.
func (deps ApiDependencies) ExportOrdersHandler(w http.ResponseWriter, r *http.Request) {
	from, to, limit, offset, err := listParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, jsonResponse{
			Status:  "error",
			Message: "Некорректный формат даты. Ожидается ГГГГ-ММ-ДД.",
		})
		return
	}

	orders, err := deps.Orders.ListOrders(from, to, limit, offset)
	if err != nil {
		log.Printf("ExportOrdersHandler: Ошибка получения данных для Excel отчета: %v", err)
		writeJSON(w, http.StatusInternalServerError, jsonResponse{
			Status:  "error",
			Message: "Не удалось получить данные для отчета.",
		})
		return
	}

	f := excelize.NewFile()
	sheetName := "Заявки"
	index, _ := f.NewSheet(sheetName)
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"Номер заявки", "Имя", "Телефон", "Тип техники", "Проблема", "Telegram", "Язык", "Вложений", "Создана"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	rowIndex := 2
	for _, order := range orders {
		username := order.Username
		if username != "" {
			username = "@" + username
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIndex), order.OrderNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowIndex), order.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowIndex), order.Phone)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowIndex), order.TechType)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowIndex), order.Problem)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowIndex), username)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowIndex), strings.ToUpper(order.Language))
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", rowIndex), len(order.MediaFiles))
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", rowIndex), order.CreatedAt.In(constants.MoscowTZ).Format("02.01.2006 15:04"))
		rowIndex++
	}

	filename := fmt.Sprintf("orders_%s.xlsx", time.Now().In(constants.MoscowTZ).Format("02012006_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := f.Write(w); err != nil {
		log.Printf("ExportOrdersHandler: Ошибка записи Excel файла в ответ: %v", err)
	}
}
