// Package graphql layers GraphQL requests on top of the httpclient
// transport: request/response wire types, a small query-string builder,
// and multipart mutations following the GraphQL multipart request spec
// (https://github.com/jaydenseric/graphql-multipart-request-spec).
package graphql
