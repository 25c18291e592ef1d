package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/nigel2421/wemisireact/models"
	"github.com/nigel2421/wemisireact/store"
)

// ImportProductsFromExcel bulk-creates or updates products from an uploaded
// .xlsx file in the export layout. Reviews never round-trip through the
// sheet; existing review lists are preserved on update.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}
		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]
			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			id := get(0)
			name := get(1)
			price, priceErr := strconv.ParseFloat(get(4), 64)
			if name == "" || priceErr != nil || price < 0 {
				skippedCount++
				continue
			}

			product := models.Product{
				ID:           id,
				Name:         name,
				Description:  get(2),
				Category:     get(3),
				Price:        price,
				ImageURLs:    splitList(get(5)),
				IsInStock:    parseBool(get(6)),
				IsNewArrival: parseBool(get(7)),
				IsVisible:    get(8) == "" || parseBool(get(8)),
				Reviews:      models.ReviewList{},
			}

			if id != "" {
				var existing models.Product
				if err := db.First(&existing, "id = ?", id).Error; err == nil {
					product.Reviews = existing.Reviews
					if err := db.Save(&product).Error; err == nil {
						updatedCount++
					} else {
						skippedCount++
					}
					continue
				}
			} else {
				product.ID = store.NewProductID()
			}
			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Import complete",
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}

func splitList(s string) models.StringList {
	if s == "" {
		return models.StringList{}
	}
	parts := strings.Split(s, ",")
	out := make(models.StringList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.ToLower(s))
	return err == nil && b
}
