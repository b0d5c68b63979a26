package graph

import (
	"github.com/graphql-go/graphql"

	"snapfeed/app/middleware"
	"snapfeed/app/services"
	"snapfeed/app/validation"
)

// graphPageSize is the posts page size on the GraphQL surface; it diverges
// from the REST page size on purpose.
const graphPageSize = 2

// Resolver maps the schema's operations onto the mutation pipeline.
type Resolver struct {
	auth *services.AuthService
	feed *services.FeedService
}

// NewResolver creates a new Resolver
func NewResolver(auth *services.AuthService, feed *services.FeedService) *Resolver {
	return &Resolver{auth: auth, feed: feed}
}

func stringArg(args map[string]interface{}, name string) string {
	s, _ := args[name].(string)
	return s
}

func inputArg(args map[string]interface{}, name string) map[string]interface{} {
	m, _ := args[name].(map[string]interface{})
	if m == nil {
		m = map[string]interface{}{}
	}
	return m
}

func (r *Resolver) login(p graphql.ResolveParams) (interface{}, error) {
	payload, err := r.auth.Login(stringArg(p.Args, "email"), stringArg(p.Args, "password"))
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (r *Resolver) posts(p graphql.ResolveParams) (interface{}, error) {
	page, _ := p.Args["currPg"].(int)
	feed, err := r.feed.ListPosts(p.Context, middleware.AuthFrom(p.Context), page, graphPageSize)
	if err != nil {
		return nil, err
	}
	return feed, nil
}

func (r *Resolver) post(p graphql.ResolveParams) (interface{}, error) {
	view, err := r.feed.GetPost(p.Context, middleware.AuthFrom(p.Context), stringArg(p.Args, "id"))
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (r *Resolver) user(p graphql.ResolveParams) (interface{}, error) {
	view, err := r.auth.User(middleware.AuthFrom(p.Context))
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (r *Resolver) createUser(p graphql.ResolveParams) (interface{}, error) {
	userInput := inputArg(p.Args, "userInput")
	view, err := r.auth.Signup(validation.SignupInput{
		Email:    stringArg(userInput, "email"),
		Password: stringArg(userInput, "password"),
		Name:     stringArg(userInput, "name"),
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (r *Resolver) createPost(p graphql.ResolveParams) (interface{}, error) {
	postInput := inputArg(p.Args, "postInput")
	view, err := r.feed.CreatePost(p.Context, middleware.AuthFrom(p.Context), validation.PostInput{
		Title:    stringArg(postInput, "title"),
		ImageURL: stringArg(postInput, "imageUrl"),
		Content:  stringArg(postInput, "content"),
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (r *Resolver) updatePost(p graphql.ResolveParams) (interface{}, error) {
	postInput := inputArg(p.Args, "postInput")

	// Clients that keep the existing image send the literal string
	// "undefined"; an empty reference keeps the current one.
	imageURL := stringArg(postInput, "imageUrl")
	if imageURL == "undefined" {
		imageURL = ""
	}

	view, err := r.feed.UpdatePost(p.Context, middleware.AuthFrom(p.Context), stringArg(p.Args, "id"), validation.PostInput{
		Title:    stringArg(postInput, "title"),
		ImageURL: imageURL,
		Content:  stringArg(postInput, "content"),
	}, false)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (r *Resolver) deletePost(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.feed.DeletePost(p.Context, middleware.AuthFrom(p.Context), stringArg(p.Args, "id")); err != nil {
		return nil, err
	}
	return true, nil
}

func (r *Resolver) updateStatus(p graphql.ResolveParams) (interface{}, error) {
	view, err := r.auth.UpdateStatus(middleware.AuthFrom(p.Context), stringArg(p.Args, "status"))
	if err != nil {
		return nil, err
	}
	return view, nil
}
