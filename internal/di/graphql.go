package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	graphqlctrl "github.com/devtutor/devtutor-go/internal/controller/graphql"
	"github.com/devtutor/devtutor-go/internal/domain/service"
)

// GraphQLModule provides the read-only GraphQL query surface
var GraphQLModule = fx.Module("graphql",
	fx.Provide(
		provideGraphQLResolver,
		provideGraphQLSchema,
		provideGraphQLHandler,
	),
)

func provideGraphQLResolver(
	blogService service.BlogService,
	courseService service.CourseService,
) *graphqlctrl.Resolver {
	return graphqlctrl.NewResolver(blogService, courseService)
}

func provideGraphQLSchema(resolver *graphqlctrl.Resolver) (*graphqlctrl.Schema, error) {
	return graphqlctrl.BuildSchema(resolver)
}

func provideGraphQLHandler(schema *graphqlctrl.Schema, logger *zap.Logger) *graphqlctrl.Handler {
	return graphqlctrl.NewHandler(schema, logger)
}
