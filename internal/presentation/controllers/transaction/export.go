package transaction

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

const (
	ExportFormatXlsx = "xlsx"
	ExportFormatCsv  = "csv"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	csvContentType  = "text/csv; charset=utf-8"
)

var exportHeader = []string{"Date", "Name", "Amount", "Booked", "Status", "Type", "Asset", "Wallet", "Partner", "Notes"}

// ExportTransactionsController renders every transaction of a workspace as a
// spreadsheet. Rendered files are cached for CacheTTL or until the next write
// to the workspace's transactions or booked amounts.
type ExportTransactionsController struct {
	FindAllTransactionsRepository usecase.FindAllTransactionsRepository
	ExportCacheRepository         usecase.ExportCacheRepository
	CacheKey                      func(workspaceId string, format string) string
	CacheTTL                      time.Duration
}

func NewExportTransactionsController(
	findAllTransactionsRepository usecase.FindAllTransactionsRepository,
	exportCacheRepository usecase.ExportCacheRepository,
	cacheKey func(workspaceId string, format string) string,
	cacheTTL time.Duration,
) *ExportTransactionsController {
	return &ExportTransactionsController{
		FindAllTransactionsRepository: findAllTransactionsRepository,
		ExportCacheRepository:         exportCacheRepository,
		CacheKey:                      cacheKey,
		CacheTTL:                      cacheTTL,
	}
}

func (c *ExportTransactionsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	workspaceId, response := helpers.GetPathId(r, "workspace_id")
	if response != nil {
		return response
	}

	format := r.UrlParams.Get("format")
	if format == "" {
		format = ExportFormatXlsx
	}
	if format != ExportFormatXlsx && format != ExportFormatCsv {
		return helpers.CreateErrorResponse(http.StatusBadRequest, helpers.KeyExportFormat,
			fmt.Sprintf("unsupported export format %q, use xlsx or csv", format))
	}

	key := c.CacheKey(workspaceId.Hex(), format)
	data, err := c.ExportCacheRepository.Find(ctx, key)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when reading the export cache", err)
	}

	if data == nil {
		transactions, err := c.FindAllTransactionsRepository.FindAll(ctx, workspaceId)
		if err != nil {
			return helpers.InternalErrorResponse("an error occurred when finding transactions", err)
		}

		if format == ExportFormatCsv {
			data, err = RenderCsv(transactions)
		} else {
			data, err = RenderXlsx(transactions)
		}
		if err != nil {
			return helpers.InternalErrorResponse("an error occurred when rendering the export", err)
		}

		if err := c.ExportCacheRepository.Save(ctx, key, data, c.CacheTTL); err != nil {
			return helpers.InternalErrorResponse("an error occurred when caching the export", err)
		}
	}

	filename := fmt.Sprintf("transactions-%s.%s", workspaceId.Hex(), format)
	if format == ExportFormatCsv {
		return helpers.CreateFileResponse(data, csvContentType, filename)
	}
	return helpers.CreateFileResponse(data, xlsxContentType, filename)
}

func exportRow(tx *models.Transaction) []string {
	var asset, wallet, partner string
	if tx.Asset != nil {
		asset = tx.Asset.Code
	}
	if tx.Wallet != nil {
		wallet = tx.Wallet.Name
	}
	if tx.Partner != nil {
		partner = tx.Partner.Name
	}

	return []string{
		tx.Date.UTC().Format(models.DateLayout),
		tx.Name,
		tx.Amount.StringFixed(2),
		tx.Booked.StringFixed(2),
		string(tx.Status),
		string(tx.Type),
		asset,
		wallet,
		partner,
		tx.Notes,
	}
}

func RenderCsv(transactions []models.Transaction) ([]byte, error) {
	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	if err := writer.Write(exportHeader); err != nil {
		return nil, err
	}
	for i := range transactions {
		if err := writer.Write(exportRow(&transactions[i])); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// RenderXlsx writes amounts as numbers with two decimals so the sheet can sum them.
func RenderXlsx(transactions []models.Transaction) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	sheet := "Transactions"
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header := make([]any, len(exportHeader))
	for i, title := range exportHeader {
		header[i] = title
	}
	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	amountStyle, err := file.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return nil, err
	}

	for i := range transactions {
		tx := &transactions[i]
		values := exportRow(tx)
		row := make([]any, len(values))
		for j, value := range values {
			row[j] = value
		}
		row[2] = tx.Amount.InexactFloat64()
		row[3] = tx.Booked.InexactFloat64()

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	if len(transactions) > 0 {
		last := len(transactions) + 1
		if err := file.SetCellStyle(sheet, "C2", fmt.Sprintf("D%d", last), amountStyle); err != nil {
			return nil, err
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
