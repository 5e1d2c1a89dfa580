package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/littlelemon/backend/domain"
	"github.com/littlelemon/backend/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Group{}); err != nil {
		log.Fatalf("Error migrating group database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MenuItem{}); err != nil {
		log.Fatalf("Error migrating menu item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Cart{}); err != nil {
		log.Fatalf("Error migrating cart database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Order{}); err != nil {
		log.Fatalf("Error migrating order database: %v", err)
		return err
	}

	if err := seedGroups(db); err != nil {
		log.Fatalf("Error seeding groups: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

// seedGroups creates the fixed role groups. "crew" and "delivery crew" are
// both seeded; different endpoints address the crew by different names.
func seedGroups(db *gorm.DB) error {
	for _, name := range []string{
		domain.GroupManagers,
		domain.GroupCrew,
		domain.GroupCustomers,
		domain.GroupDeliveryCrew,
	} {
		var group entities.Group
		if err := db.Where(entities.Group{Name: name}).FirstOrCreate(&group).Error; err != nil {
			return err
		}
	}
	return nil
}
