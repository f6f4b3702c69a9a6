package di

import (
	"go.uber.org/fx"

	"github.com/devtutor/devtutor-go/internal/domain/dao"
	mongodao "github.com/devtutor/devtutor-go/internal/domain/dao/mongo"
)

// DAOModule provides DAO dependencies backed by MongoDB.
var DAOModule = fx.Module("dao",
	fx.Provide(
		provideUserDAO,
		provideRefreshTokenDAO,
		provideBlogDAO,
		provideCourseDAO,
	),
)

func provideUserDAO(mongoDB *MongoDatabase) dao.UserDAO {
	return mongodao.NewUserDAO(mongoDB.DB)
}

func provideRefreshTokenDAO(mongoDB *MongoDatabase) dao.RefreshTokenDAO {
	return mongodao.NewRefreshTokenDAO(mongoDB.DB)
}

func provideBlogDAO(mongoDB *MongoDatabase) dao.BlogDAO {
	return mongodao.NewBlogDAO(mongoDB.DB)
}

func provideCourseDAO(mongoDB *MongoDatabase) dao.CourseDAO {
	return mongodao.NewCourseDAO(mongoDB.DB)
}
