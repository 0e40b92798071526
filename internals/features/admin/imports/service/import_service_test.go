// file: internals/features/admin/imports/service/import_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"societyhub_backend/internals/constants"
	"societyhub_backend/internals/features/admin/imports/dto"
	importModel "societyhub_backend/internals/features/admin/imports/model"
	flatModel "societyhub_backend/internals/features/flats/model"
	authModel "societyhub_backend/internals/features/users/auth/model"
	userModel "societyhub_backend/internals/features/users/user/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&flatModel.FlatModel{},
		&userModel.UserModel{},
		&authModel.PasswordResetToken{},
		&importModel.BulkImportLogModel{},
	))
	return db
}

func TestMapHeadersAliases(t *testing.T) {
	idx := MapHeaders([]string{"Flat No", "Owner Name", "Email ID", "Mobile", "Tower", "Floor", "Area (ignored)"})
	assert.Equal(t, 0, idx["flat_number"])
	assert.Equal(t, 1, idx["name"])
	assert.Equal(t, 2, idx["email"])
	assert.Equal(t, 3, idx["phone"])
	assert.Equal(t, 4, idx["block"])
	assert.Equal(t, 5, idx["floor"])

	// unknown columns are dropped, first alias wins on duplicates
	idx = MapHeaders([]string{"unit", "flat", "remarks"})
	assert.Equal(t, 0, idx["flat_number"])
	_, hasRemarks := idx["remarks"]
	assert.False(t, hasRemarks)
}

func TestParseCSVLine(t *testing.T) {
	assert.Equal(t, []string{"A-101", "Asha Rao", "asha@example.com"},
		ParseCSVLine("A-101, Asha Rao ,asha@example.com"))

	// quoted fields keep commas, "" escapes a quote
	assert.Equal(t, []string{"A-102", `Rao, Asha`, `the "corner" flat`},
		ParseCSVLine(`A-102,"Rao, Asha","the ""corner"" flat"`))

	assert.Equal(t, []string{""}, ParseCSVLine(""))
	assert.Equal(t, []string{"a", "", "b"}, ParseCSVLine("a,,b"))
}

func TestSplitCSVNormalizesLineEndings(t *testing.T) {
	lines := SplitCSV("h1,h2\r\na,b\r\n\r\nc,d\n")
	assert.Equal(t, []string{"h1,h2", "a,b", "c,d"}, lines)
}

func TestRunImportCreatesResidentsFlatsAndTokens(t *testing.T) {
	db := newTestDB(t)
	importerID := uuid.New()

	csv := "Flat,Name,Email,Phone,Tower\n" +
		"a-101,Asha Rao,asha@example.com,9876543210,A\n" +
		"A-102,\"Rao, Binod\",binod@example.com,,A\n"

	summary, err := RunImport(db, "owners.csv", csv, importerID)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalRows)
	assert.Equal(t, 2, summary.SuccessCount)
	assert.Zero(t, summary.FailureCount)
	assert.Zero(t, summary.SkippedCount)

	var user userModel.UserModel
	require.NoError(t, db.Preload("Flat").Where("user_email = ?", "asha@example.com").First(&user).Error)
	assert.Equal(t, constants.RoleResident, user.UserRole)
	assert.True(t, user.UserIsActive)
	require.NotNil(t, user.Flat)
	assert.Equal(t, "A-101", user.Flat.FlatNumber) // uppercased
	require.NotNil(t, user.Flat.FlatBlock)
	assert.Equal(t, "A", *user.Flat.FlatBlock)

	var token authModel.PasswordResetToken
	require.NoError(t, db.Where("password_reset_user_id = ?", user.UserID).First(&token).Error)
	assert.Len(t, token.PasswordResetToken, 64) // 32 random bytes, hex
	assert.False(t, token.PasswordResetUsed)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), token.PasswordResetExpiresAt, time.Minute)

	var logRow importModel.BulkImportLogModel
	require.NoError(t, db.First(&logRow, "bulk_import_log_id = ?", summary.LogID).Error)
	assert.Equal(t, "owners.csv", logRow.BulkImportLogFileName)
	assert.Equal(t, 2, logRow.BulkImportLogSuccessCount)
	assert.Equal(t, importerID, logRow.BulkImportLogImportedByID)
}

func TestRunImportSkipsExistingAndRecordsErrors(t *testing.T) {
	db := newTestDB(t)

	existing := userModel.UserModel{
		UserName:     "Asha Rao",
		UserEmail:    "asha@example.com",
		UserPassword: "x",
		UserRole:     constants.RoleResident,
		UserIsActive: true,
	}
	require.NoError(t, db.Create(&existing).Error)

	csv := "flat,email\n" +
		"A-101,asha@example.com\n" + // duplicate -> skip
		",missing@flat.com\n" + // no flat number -> error
		"B-201,not-an-email\n" + // bad email -> error
		"B-202,new@example.com\n" // fine

	summary, err := RunImport(db, "batch.csv", csv, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalRows)
	assert.Equal(t, 1, summary.SuccessCount)
	assert.Equal(t, 1, summary.SkippedCount)
	assert.Equal(t, 2, summary.FailureCount)

	// only the failed rows land in the audit log errors
	var logRow importModel.BulkImportLogModel
	require.NoError(t, db.First(&logRow, "bulk_import_log_id = ?", summary.LogID).Error)
	assert.Equal(t, 2, logRow.BulkImportLogFailureCount)
	assert.Contains(t, string(logRow.BulkImportLogErrors), "not-an-email")

	// duplicate row created no second account
	var count int64
	require.NoError(t, db.Model(&userModel.UserModel{}).
		Where("user_email = ?", "asha@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRunImportRejectsUnusableFiles(t *testing.T) {
	db := newTestDB(t)

	for name, csv := range map[string]string{
		"header only":    "flat,email\n",
		"no flat column": "name,email\nAsha,a@b.com\n",
		"no email":       "flat,name\nA-1,Asha\n",
	} {
		_, err := RunImport(db, "bad.csv", csv, uuid.New())
		require.Error(t, err, name)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe, name)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code, name)
	}
}

func TestRowResultNameDefaultsFromEmail(t *testing.T) {
	db := newTestDB(t)

	csv := "flat,email\nC-303,ravi.kumar@example.com\n"
	summary, err := RunImport(db, "one.csv", csv, uuid.New())
	require.NoError(t, err)
	require.Equal(t, 1, summary.SuccessCount)
	assert.Equal(t, dto.RowStatusCreated, summary.Results[0].Status)

	var user userModel.UserModel
	require.NoError(t, db.Where("user_email = ?", "ravi.kumar@example.com").First(&user).Error)
	assert.Equal(t, "ravi.kumar", user.UserName)
}
