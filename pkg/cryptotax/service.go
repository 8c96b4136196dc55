package cryptotax

import "context"

type Service interface {
	CreateLink(ctx context.Context, request *CreateLinkRequest) (*CreateLinkResponse, error)
}
