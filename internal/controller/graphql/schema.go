// Package graphql exposes a read-only query surface over the published
// blog and course catalogs.
package graphql

import (
	"github.com/graphql-go/graphql"
)

// Schema represents the GraphQL schema
type Schema struct {
	schema graphql.Schema
}

// BuildSchema builds the GraphQL schema
func BuildSchema(resolver *Resolver) (*Schema, error) {
	commentType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Comment",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
			},
			"authorId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
			},
			"content": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
			},
		},
	})

	blogType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Blog",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"slug": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"content": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"summary": &graphql.Field{
				Type: graphql.String,
			},
			"category": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"tags": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(graphql.String)),
			},
			"authorId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
			},
			"likeCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
			},
			"comments": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(commentType)),
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
			},
		},
	})

	topicType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Topic",
		Fields: graphql.Fields{
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"content": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"order": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
			},
		},
	})

	reviewType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Review",
		Fields: graphql.Fields{
			"userId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
			},
			"rating": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
			},
			"text": &graphql.Field{
				Type: graphql.String,
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
			},
		},
	})

	courseType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Course",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"slug": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"description": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"instructorId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
			},
			"category": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"level": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"price": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
			},
			"topics": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(topicType)),
			},
			"reviews": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(reviewType)),
			},
			"enrolledCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
			},
			"rating": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
			},
		},
	})

	pageInfoType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PageInfo",
		Fields: graphql.Fields{
			"page": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
			},
			"size": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
			},
			"totalItems": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
			},
			"totalPages": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
			},
		},
	})

	blogsConnectionType := graphql.NewObject(graphql.ObjectConfig{
		Name: "BlogsConnection",
		Fields: graphql.Fields{
			"items": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(blogType))),
			},
			"pageInfo": &graphql.Field{
				Type: graphql.NewNonNull(pageInfoType),
			},
		},
	})

	coursesConnectionType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CoursesConnection",
		Fields: graphql.Fields{
			"items": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(courseType))),
			},
			"pageInfo": &graphql.Field{
				Type: graphql.NewNonNull(pageInfoType),
			},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"blogs": &graphql.Field{
				Type:        blogsConnectionType,
				Description: "List published blogs with pagination",
				Args: graphql.FieldConfigArgument{
					"page": &graphql.ArgumentConfig{
						Type:         graphql.Int,
						DefaultValue: 1,
					},
					"size": &graphql.ArgumentConfig{
						Type:         graphql.Int,
						DefaultValue: 10,
					},
					"category": &graphql.ArgumentConfig{
						Type: graphql.String,
					},
					"search": &graphql.ArgumentConfig{
						Type: graphql.String,
					},
				},
				Resolve: resolver.Blogs,
			},
			"blog": &graphql.Field{
				Type:        blogType,
				Description: "Get a published blog by slug",
				Args: graphql.FieldConfigArgument{
					"slug": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
				},
				Resolve: resolver.Blog,
			},
			"courses": &graphql.Field{
				Type:        coursesConnectionType,
				Description: "List published courses with pagination",
				Args: graphql.FieldConfigArgument{
					"page": &graphql.ArgumentConfig{
						Type:         graphql.Int,
						DefaultValue: 1,
					},
					"size": &graphql.ArgumentConfig{
						Type:         graphql.Int,
						DefaultValue: 10,
					},
					"category": &graphql.ArgumentConfig{
						Type: graphql.String,
					},
					"level": &graphql.ArgumentConfig{
						Type: graphql.String,
					},
					"search": &graphql.ArgumentConfig{
						Type: graphql.String,
					},
				},
				Resolve: resolver.Courses,
			},
			"course": &graphql.Field{
				Type:        courseType,
				Description: "Get a published course by slug",
				Args: graphql.FieldConfigArgument{
					"slug": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
				},
				Resolve: resolver.Course,
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
	if err != nil {
		return nil, err
	}

	return &Schema{schema: schema}, nil
}

// Schema returns the graphql.Schema
func (s *Schema) Schema() graphql.Schema {
	return s.schema
}
