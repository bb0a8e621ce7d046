package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	v1 "github.com/halalflow/backend/internal/controllers/v1"
	"github.com/halalflow/backend/internal/ledger"
	"github.com/halalflow/backend/internal/models"
	"github.com/halalflow/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) TestExport() {
	suite.onboard(1000, 2000, 1500)
	suite.createTestAsset(v1.AssetEditable{Name: "Voiture", Value: d(5000)})

	r := suite.request(http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "GNU Terry Pratchett", response.Clacks)
	assert.Equal(suite.T(), "0.0.0", response.Version)
	assert.Equal(suite.T(), now, response.CreationTime)

	for _, model := range []string{"Asset", "FutureOperation", "Goal", "Settings", "Transaction"} {
		assert.Contains(suite.T(), response.Data, model)
	}

	var assets []models.Asset
	suite.Require().Nil(json.Unmarshal(response.Data["Asset"], &assets))
	suite.Require().Len(assets, 1)
	assert.Equal(suite.T(), "Voiture", assets[0].Name)
}

func (suite *TestSuiteStandard) TestExportCSV() {
	date := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeOut, Amount: d(12.5), Label: "Café; croissant", Date: &date})

	r := suite.request(http.MethodGet, "http://example.com/v1/export/csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "text/csv; charset=utf-8", r.Header().Get("Content-Type"))
	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), "attachment")

	body := strings.TrimPrefix(r.Body.String(), "\ufeff")
	lines := strings.Split(strings.TrimSpace(body), "\n")
	suite.Require().Len(lines, 2)
	assert.Equal(suite.T(), "Date;Type;Libellé;Montant", lines[0])
	assert.Equal(suite.T(), `2024-06-03;Sortie;"Café; croissant";12.50`, lines[1])
}

func (suite *TestSuiteStandard) TestExportXLSX() {
	suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeIn, Amount: d(2800), Label: "Salaire"})

	r := suite.request(http.MethodGet, "http://example.com/v1/export/xlsx", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(r.Body.Bytes()))
	suite.Require().Nil(err)
	defer f.Close()

	rows, err := f.GetRows(ledger.TransactionsSheet)
	suite.Require().Nil(err)
	suite.Require().Len(rows, 2)
	assert.Equal(suite.T(), "Libellé", rows[0][2])
	assert.Equal(suite.T(), "Salaire", rows[1][2])
}

func (suite *TestSuiteStandard) TestExportDatabaseError() {
	suite.CloseDB()

	for _, path := range []string{"", "/csv", "/xlsx"} {
		suite.Run(path, func() {
			r := suite.request(http.MethodGet, "http://example.com/v1/export"+path, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
		})
	}
}
