package store

import (
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nigel2421/wemisireact/models"
)

// Default admin accounts, used only when ADMIN_USERS is not set. Passwords are
// hashed before they ever reach the users table.
var defaultAdmins = []struct {
	Username string
	Password string
}{
	{Username: "superadmin", Password: "supersecretpassword!@#"},
	{Username: "admin", Password: "babatibim1"},
}

var seedCategories = []string{"Tiles", "Marble", "Fences", "Stone"}

// Seed populates empty collections with the starter catalog. Each collection
// is guarded by a count so a restart never duplicates data.
func Seed(db *gorm.DB) error {
	if err := seedUsers(db); err != nil {
		return err
	}
	if err := seedCategoryRows(db); err != nil {
		return err
	}
	return seedProducts(db)
}

func seedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admins := defaultAdmins
	if raw := os.Getenv("ADMIN_USERS"); raw != "" {
		admins = admins[:0]
		for _, pair := range strings.Split(raw, ",") {
			parts := strings.SplitN(pair, ":", 2)
			if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
				continue
			}
			admins = append(admins, struct {
				Username string
				Password string
			}{Username: parts[0], Password: parts[1]})
		}
	} else {
		log.Println("⚠️ ADMIN_USERS not set, seeding default admin accounts")
	}

	for _, a := range admins {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{Username: a.Username, PasswordHash: string(hash)}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}
	log.Println("✅ Seeded admin users")
	return nil
}

func seedCategoryRows(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, name := range seedCategories {
		if err := db.Create(&models.Category{Name: name}).Error; err != nil {
			return err
		}
	}
	log.Println("✅ Seeded categories")
	return nil
}

func seedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, p := range starterProducts() {
		if err := db.Create(&p).Error; err != nil {
			return err
		}
	}
	log.Println("✅ Seeded products")
	return nil
}

func starterProducts() []models.Product {
	return []models.Product{
		{
			ID:          "prod-1",
			Name:        "Carrara Marble Tile",
			Description: "Classic Italian polished marble, perfect for elegant floors and walls. A timeless choice for luxury interiors.",
			ImageURLs:   models.StringList{"https://picsum.photos/seed/marble1/600/400"},
			Category:    "Marble",
			Price:        1170.00,
			IsNewArrival: true,
			IsInStock:    true,
			IsVisible:    true,
			Reviews: models.ReviewList{
				{ID: "r1", UserName: "Alice M.", Rating: 5, Comment: "Absolutely stunning tiles! They transformed my bathroom completely.", Date: "2023-10-05"},
				{ID: "r2", UserName: "John D.", Rating: 4, Comment: "Great quality, but shipping took a bit longer than expected.", Date: "2023-09-20"},
			},
		},
		{
			ID:           "prod-2",
			Name:         "Modern Slate Fence Panel",
			Description:  "Sleek and durable slate panels for a contemporary garden or property boundary. Offers privacy and style.",
			ImageURLs:    models.StringList{"https://picsum.photos/seed/fence1/600/400"},
			Category:     "Fences",
			Price:        20150.00,
			IsNewArrival: true,
			IsInStock:    true,
			IsVisible:    true,
			Reviews: models.ReviewList{
				{ID: "r3", UserName: "Sarah K.", Rating: 5, Comment: "Very solid and looks expensive. My neighbors are jealous!", Date: "2023-11-01"},
			},
		},
		{
			ID:          "prod-3",
			Name:        "Terracotta Hexagon Tiles",
			Description: "Warm, rustic terracotta tiles in a modern hexagon shape. Ideal for kitchens and entryways.",
			ImageURLs:   models.StringList{"https://picsum.photos/seed/tiles1/600/400"},
			Category:    "Tiles",
			Price:       845.00,
			IsInStock:   false,
			IsVisible:   true,
			Reviews:     models.ReviewList{},
		},
		{
			ID:          "prod-4",
			Name:        "Emperador Dark Marble Slab",
			Description: "A rich, dark brown marble with intricate light veining. Makes a bold statement for countertops or feature walls.",
			ImageURLs:   models.StringList{"https://picsum.photos/seed/marble2/600/400"},
			Category:    "Marble",
			Price:       12415.00,
			IsInStock:   true,
			IsVisible:   true,
			Reviews:     models.ReviewList{},
		},
		{
			ID:          "prod-5",
			Name:        "Cobblestone Pavers",
			Description: "Authentic, old-world cobblestone for creating charming driveways, walkways, and patios.",
			ImageURLs:   models.StringList{"https://picsum.photos/seed/stone1/600/400"},
			Category:    "Stone",
			Price:       620.00,
			IsInStock:   true,
			IsVisible:   true,
			Reviews: models.ReviewList{
				{ID: "r4", UserName: "Mike R.", Rating: 5, Comment: "Perfect for my garden path.", Date: "2023-08-15"},
			},
		},
		{
			ID:          "prod-6",
			Name:        "Subway Ceramic Tiles",
			Description: "Versatile and clean ceramic subway tiles. A classic choice for backsplashes in kitchens and bathrooms.",
			ImageURLs:   models.StringList{"https://picsum.photos/seed/tiles2/600/400"},
			Category:    "Tiles",
			Price:       390.00,
			IsInStock:   true,
			IsVisible:   true,
			Reviews:     models.ReviewList{},
		},
		{
			ID:           "prod-7",
			Name:         "Wrought Iron Fence Section",
			Description:  "Elegant and secure wrought iron fencing with ornate details. Perfect for classic and formal landscapes.",
			ImageURLs:    models.StringList{"https://picsum.photos/seed/fence2/600/400"},
			Category:     "Fences",
			Price:        35750.00,
			IsNewArrival: true,
			IsInStock:    true,
			IsVisible:    true,
			Reviews:      models.ReviewList{},
		},
		{
			ID:          "prod-8",
			Name:        "Travertine Stone Flooring",
			Description: "Natural travertine stone with a unique textured finish. Brings a touch of earthy elegance to any space.",
			ImageURLs:   models.StringList{"https://picsum.photos/seed/stone2/600/400"},
			Category:    "Stone",
			Price:       945.00,
			IsInStock:   true,
			IsVisible:   true,
			Reviews:     models.ReviewList{},
		},
	}
}
