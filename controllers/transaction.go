// controllers/transaction.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonledger-backend/config"
	"salonledger-backend/models"
	"salonledger-backend/utils"
)

type CreateTransactionInput struct {
	Date        string  `json:"date" binding:"required"` // YYYY-MM-DD
	Description string  `json:"description"`
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category"`
}

type UpdateTransactionInput struct {
	Date        *string  `json:"date"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Category    *string  `json:"category"`
}

func CreateTransaction(c *gin.Context) {
	var input CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := time.Parse(dateLayout, input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	transaction := models.Transaction{
		Date:         date,
		Description:  input.Description,
		Type:         input.Type,
		Amount:       input.Amount,
		Category:     input.Category,
		CanBeDeleted: true,
	}

	if err := config.DB.Create(&transaction).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

func GetTransactions(c *gin.Context) {
	var transactions []models.Transaction
	if err := config.DB.Order("date desc").Find(&transactions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// UpdateTransaction edits a manual transaction. Synthetic rows follow
// their appointment and reject direct edits.
func UpdateTransaction(c *gin.Context) {
	transactionUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	var input UpdateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var transaction models.Transaction
	if err := config.DB.First(&transaction, "id = ?", transactionUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if transaction.Synthetic() {
		utils.RespondWithError(c, http.StatusConflict, "Transaction is managed by its appointment")
		return
	}

	if input.Date != nil {
		date, err := time.Parse(dateLayout, *input.Date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		transaction.Date = date
	}
	if input.Description != nil {
		transaction.Description = *input.Description
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Amount must be positive")
			return
		}
		transaction.Amount = *input.Amount
	}
	if input.Category != nil {
		transaction.Category = *input.Category
	}

	if err := config.DB.Save(&transaction).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, transaction)
}

func DeleteTransaction(c *gin.Context) {
	transactionUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	var transaction models.Transaction
	if err := config.DB.First(&transaction, "id = ?", transactionUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !transaction.CanBeDeleted {
		utils.RespondWithError(c, http.StatusConflict, "Transaction is managed by its appointment")
		return
	}

	if err := config.DB.Delete(&transaction).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
