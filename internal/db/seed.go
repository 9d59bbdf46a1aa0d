package db

import (
	"ncnews/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Dataset is a full set of rows to load. Articles get their ids from the
// sequence in slice order, so Comment.ArticleID refers to 1-based positions in
// Articles.
type Dataset struct {
	Topics   []models.Topic
	Users    []models.User
	Articles []models.Article
	Comments []models.Comment
}

// Seed drops every table, recreates the schema and loads data in a single
// transaction. Previous contents are lost.
func Seed(gdb *gorm.DB, data Dataset) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Migrator().DropTable(&models.Comment{}, &models.Article{}, &models.User{}, &models.Topic{}); err != nil {
			return errors.Wrap(err, "drop tables")
		}
		if err := Migrate(tx); err != nil {
			return err
		}

		tx = tx.Omit(clause.Associations)
		if len(data.Topics) > 0 {
			if err := tx.Create(&data.Topics).Error; err != nil {
				return errors.Wrap(err, "insert topics")
			}
		}
		if len(data.Users) > 0 {
			if err := tx.Create(&data.Users).Error; err != nil {
				return errors.Wrap(err, "insert users")
			}
		}
		// One row per statement keeps ids in slice order.
		for i := range data.Articles {
			if err := tx.Create(&data.Articles[i]).Error; err != nil {
				return errors.Wrapf(err, "insert article %q", data.Articles[i].Title)
			}
		}
		for i := range data.Comments {
			if err := tx.Create(&data.Comments[i]).Error; err != nil {
				return errors.Wrapf(err, "insert comment %d", i+1)
			}
		}
		return nil
	})
}
