package ledger_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"

	"github.com/halalflow/backend/internal/ledger"
	"github.com/halalflow/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) seedTransactions() {
	_, err := suite.engine.RecordTransaction(suite.ctx, ledger.TransactionInput{Type: models.TransactionTypeIn, Amount: d(2000), Label: "Salaire", Date: now.AddDate(0, 0, -3)})
	suite.Require().Nil(err)
	_, err = suite.engine.RecordTransaction(suite.ctx, ledger.TransactionInput{Type: models.TransactionTypeOut, Amount: d(45.5), Label: "Courses; marché", Date: now.AddDate(0, 0, -1)})
	suite.Require().Nil(err)
}

func (suite *TestSuiteStandard) TestExport() {
	suite.seedTransactions()
	suite.createGoal("Voyage", 1000)

	export, err := suite.engine.Export(suite.ctx, "1.2.3")
	suite.Require().Nil(err)
	assert.Equal(suite.T(), "1.2.3", export.Version)
	assert.Equal(suite.T(), now, export.CreationTime)

	for _, name := range []string{"Asset", "FutureOperation", "Goal", "Settings", "Transaction"} {
		assert.Contains(suite.T(), export.Data, name)
	}

	var transactions []models.Transaction
	suite.Require().Nil(json.Unmarshal(export.Data["Transaction"], &transactions))
	assert.Len(suite.T(), transactions, 2)
}

func (suite *TestSuiteStandard) TestExportClosedDB() {
	suite.CloseDB()
	_, err := suite.engine.Export(suite.ctx, "1.2.3")
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestWriteTransactionsCSV() {
	suite.seedTransactions()

	var b bytes.Buffer
	suite.Require().Nil(suite.engine.WriteTransactionsCSV(suite.ctx, &b))

	content := strings.TrimPrefix(b.String(), "\xEF\xBB\xBF")
	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = ';'
	records, err := reader.ReadAll()
	suite.Require().Nil(err)

	suite.Require().Len(records, 3)
	assert.Equal(suite.T(), []string{"Date", "Type", "Libellé", "Montant"}, records[0])
	assert.Equal(suite.T(), []string{"2024-06-14", "Sortie", "Courses; marché", "45.50"}, records[1])
	assert.Equal(suite.T(), []string{"2024-06-12", "Entrée", "Salaire", "2000.00"}, records[2])
}

func (suite *TestSuiteStandard) TestWriteTransactionsXLSX() {
	suite.seedTransactions()

	var b bytes.Buffer
	suite.Require().Nil(suite.engine.WriteTransactionsXLSX(suite.ctx, &b))

	f, err := excelize.OpenReader(&b)
	suite.Require().Nil(err)
	defer f.Close()

	rows, err := f.GetRows(ledger.TransactionsSheet)
	suite.Require().Nil(err)
	suite.Require().Len(rows, 3)
	assert.Equal(suite.T(), "Libellé", rows[0][2])
	assert.Equal(suite.T(), "Sortie", rows[1][1])
	assert.Equal(suite.T(), "Courses; marché", rows[1][2])
	assert.Equal(suite.T(), "Salaire", rows[2][2])
}
