// Package docs registers the OpenAPI document served under /api/docs
// keep paths in step with the swagger annotations on the handlers
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.0.3",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/meta/health": {
            "get": {
                "tags": [
                    "Meta"
                ],
                "summary": "Health check",
                "operationId": "metaHealth",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/Envelope"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/HealthResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                }
            }
        },
        "/meta/ready": {
            "get": {
                "tags": [
                    "Meta"
                ],
                "summary": "Readiness probe",
                "operationId": "metaReady",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/Envelope"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/ReadyResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                }
            }
        },
        "/meta/version": {
            "get": {
                "tags": [
                    "Meta"
                ],
                "summary": "Build and version info",
                "operationId": "metaVersion",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/Envelope"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/BuildInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                }
            }
        },
        "/meta/service": {
            "get": {
                "tags": [
                    "Meta"
                ],
                "summary": "Service info and uptime",
                "operationId": "metaService",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/Envelope"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/ServiceResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                }
            }
        },
        "/meta/forges": {
            "get": {
                "tags": [
                    "Meta"
                ],
                "summary": "Registered forges, their capabilities and flagship hosts",
                "operationId": "metaForges",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/Envelope"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/ForgesResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                }
            }
        },
        "/forge/repo/{kind}/{owner}/{repo}": {
            "get": {
                "tags": [
                    "Forge"
                ],
                "summary": "Repository metadata on the flagship instance of kind",
                "operationId": "forgeRepository",
                "parameters": [
                    {
                        "name": "kind",
                        "in": "path",
                        "required": true,
                        "description": "forge kind",
                        "schema": {
                            "type": "string",
                            "enum": [
                                "github",
                                "gitlab",
                                "forgejo",
                                "sourcehut",
                                "flakehub"
                            ]
                        }
                    },
                    {
                        "name": "owner",
                        "in": "path",
                        "required": true,
                        "description": "owner or group, nested groups as %2F",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "repo",
                        "in": "path",
                        "required": true,
                        "description": "repository",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/Envelope"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/Result"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "endpoint not available for this forge / flagship instance unavailable for this forge",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "error communicating with the remote server",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/forge/repo/host/{host}/{owner}/{repo}": {
            "get": {
                "tags": [
                    "Forge"
                ],
                "summary": "Repository metadata on a discovered host",
                "operationId": "forgeRepositoryByHost",
                "parameters": [
                    {
                        "name": "host",
                        "in": "path",
                        "required": true,
                        "description": "host name",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "owner",
                        "in": "path",
                        "required": true,
                        "description": "owner or group, nested groups as %2F",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "repo",
                        "in": "path",
                        "required": true,
                        "description": "repository",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/Envelope"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/Result"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "endpoint not available for this forge / flagship instance unavailable for this forge",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "error communicating with the remote server",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/forge/tarball/repo/{kind}/{owner}/{repo}": {
            "get": {
                "tags": [
                    "Forge"
                ],
                "summary": "Redirect to the source archive (repo)",
                "operationId": "forgeTarballRepository",
                "parameters": [
                    {
                        "name": "kind",
                        "in": "path",
                        "required": true,
                        "description": "forge kind",
                        "schema": {
                            "type": "string",
                            "enum": [
                                "github",
                                "gitlab",
                                "forgejo",
                                "sourcehut",
                                "flakehub"
                            ]
                        }
                    },
                    {
                        "name": "owner",
                        "in": "path",
                        "required": true,
                        "description": "owner or group, nested groups as %2F",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "repo",
                        "in": "path",
                        "required": true,
                        "description": "repository",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "307": {
                        "description": "redirect to the archive",
                        "headers": {
                            "Location": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "endpoint not available for this forge / flagship instance unavailable for this forge",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "error communicating with the remote server",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/forge/tarball/repo/host/{host}/{owner}/{repo}": {
            "get": {
                "tags": [
                    "Forge"
                ],
                "summary": "Redirect to the source archive (repo) on a discovered host",
                "operationId": "forgeTarballRepositoryByHost",
                "parameters": [
                    {
                        "name": "host",
                        "in": "path",
                        "required": true,
                        "description": "host name",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "owner",
                        "in": "path",
                        "required": true,
                        "description": "owner or group, nested groups as %2F",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "repo",
                        "in": "path",
                        "required": true,
                        "description": "repository",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "307": {
                        "description": "redirect to the archive",
                        "headers": {
                            "Location": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "endpoint not available for this forge / flagship instance unavailable for this forge",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "error communicating with the remote server",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/forge/latest/{kind}/{owner}/{repo}": {
            "get": {
                "tags": [
                    "Forge"
                ],
                "summary": "Newest release, or newest tag when the forge has no releases on the flagship instance of kind",
                "operationId": "forgeLatestRelease",
                "parameters": [
                    {
                        "name": "kind",
                        "in": "path",
                        "required": true,
                        "description": "forge kind",
                        "schema": {
                            "type": "string",
                            "enum": [
                                "github",
                                "gitlab",
                                "forgejo",
                                "sourcehut",
                                "flakehub"
                            ]
                        }
                    },
                    {
                        "name": "owner",
                        "in": "path",
                        "required": true,
                        "description": "owner or group, nested groups as %2F",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "repo",
                        "in": "path",
                        "required": true,
                        "description": "repository",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/Envelope"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/Result"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "endpoint not available for this forge / flagship instance unavailable for this forge",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "error communicating with the remote server",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/forge/latest/host/{host}/{owner}/{repo}": {
            "get": {
                "tags": [
                    "Forge"
                ],
                "summary": "Newest release, or newest tag when the forge has no releases on a discovered host",
                "operationId": "forgeLatestReleaseByHost",
                "parameters": [
                    {
                        "name": "host",
                        "in": "path",
                        "required": true,
                        "description": "host name",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "owner",
                        "in": "path",
                        "required": true,
                        "description": "owner or group, nested groups as %2F",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "repo",
                        "in": "path",
                        "required": true,
                        "description": "repository",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/Envelope"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/Result"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "endpoint not available for this forge / flagship instance unavailable for this forge",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "error communicating with the remote server",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/forge/tarball/latest/{kind}/{owner}/{repo}": {
            "get": {
                "tags": [
                    "Forge"
                ],
                "summary": "Redirect to the source archive (latest)",
                "operationId": "forgeTarballLatestRelease",
                "parameters": [
                    {
                        "name": "kind",
                        "in": "path",
                        "required": true,
                        "description": "forge kind",
                        "schema": {
                            "type": "string",
                            "enum": [
                                "github",
                                "gitlab",
                                "forgejo",
                                "sourcehut",
                                "flakehub"
                            ]
                        }
                    },
                    {
                        "name": "owner",
                        "in": "path",
                        "required": true,
                        "description": "owner or group, nested groups as %2F",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "repo",
                        "in": "path",
                        "required": true,
                        "description": "repository",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "307": {
                        "description": "redirect to the archive",
                        "headers": {
                            "Location": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "endpoint not available for this forge / flagship instance unavailable for this forge",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "error communicating with the remote server",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/forge/tarball/latest/host/{host}/{owner}/{repo}": {
            "get": {
                "tags": [
                    "Forge"
                ],
                "summary": "Redirect to the source archive (latest) on a discovered host",
                "operationId": "forgeTarballLatestReleaseByHost",
                "parameters": [
                    {
                        "name": "host",
                        "in": "path",
                        "required": true,
                        "description": "host name",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "owner",
                        "in": "path",
                        "required": true,
                        "description": "owner or group, nested groups as %2F",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "repo",
                        "in": "path",
                        "required": true,
                        "description": "repository",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "307": {
                        "description": "redirect to the archive",
                        "headers": {
                            "Location": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "endpoint not available for this forge / flagship instance unavailable for this forge",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "error communicating with the remote server",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/forge/version/{kind}/{owner}/{repo}/{ref}": {
            "get": {
                "tags": [
                    "Forge"
                ],
                "summary": "A specific tag or version on the flagship instance of kind",
                "operationId": "forgeVersion",
                "parameters": [
                    {
                        "name": "kind",
                        "in": "path",
                        "required": true,
                        "description": "forge kind",
                        "schema": {
                            "type": "string",
                            "enum": [
                                "github",
                                "gitlab",
                                "forgejo",
                                "sourcehut",
                                "flakehub"
                            ]
                        }
                    },
                    {
                        "name": "owner",
                        "in": "path",
                        "required": true,
                        "description": "owner or group, nested groups as %2F",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "repo",
                        "in": "path",
                        "required": true,
                        "description": "repository",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "ref",
                        "in": "path",
                        "required": true,
                        "description": "tag, version or branch; may contain slashes",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/Envelope"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/Result"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "endpoint not available for this forge / flagship instance unavailable for this forge",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "error communicating with the remote server",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/forge/version/host/{host}/{owner}/{repo}/{ref}": {
            "get": {
                "tags": [
                    "Forge"
                ],
                "summary": "A specific tag or version on a discovered host",
                "operationId": "forgeVersionByHost",
                "parameters": [
                    {
                        "name": "host",
                        "in": "path",
                        "required": true,
                        "description": "host name",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "owner",
                        "in": "path",
                        "required": true,
                        "description": "owner or group, nested groups as %2F",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "repo",
                        "in": "path",
                        "required": true,
                        "description": "repository",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "ref",
                        "in": "path",
                        "required": true,
                        "description": "tag, version or branch; may contain slashes",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/Envelope"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/Result"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "endpoint not available for this forge / flagship instance unavailable for this forge",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "error communicating with the remote server",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/forge/tarball/version/{kind}/{owner}/{repo}/{ref}": {
            "get": {
                "tags": [
                    "Forge"
                ],
                "summary": "Redirect to the source archive (version)",
                "operationId": "forgeTarballVersion",
                "parameters": [
                    {
                        "name": "kind",
                        "in": "path",
                        "required": true,
                        "description": "forge kind",
                        "schema": {
                            "type": "string",
                            "enum": [
                                "github",
                                "gitlab",
                                "forgejo",
                                "sourcehut",
                                "flakehub"
                            ]
                        }
                    },
                    {
                        "name": "owner",
                        "in": "path",
                        "required": true,
                        "description": "owner or group, nested groups as %2F",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "repo",
                        "in": "path",
                        "required": true,
                        "description": "repository",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "ref",
                        "in": "path",
                        "required": true,
                        "description": "tag, version or branch; may contain slashes",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "307": {
                        "description": "redirect to the archive",
                        "headers": {
                            "Location": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "endpoint not available for this forge / flagship instance unavailable for this forge",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "error communicating with the remote server",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/forge/tarball/version/host/{host}/{owner}/{repo}/{ref}": {
            "get": {
                "tags": [
                    "Forge"
                ],
                "summary": "Redirect to the source archive (version) on a discovered host",
                "operationId": "forgeTarballVersionByHost",
                "parameters": [
                    {
                        "name": "host",
                        "in": "path",
                        "required": true,
                        "description": "host name",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "owner",
                        "in": "path",
                        "required": true,
                        "description": "owner or group, nested groups as %2F",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "repo",
                        "in": "path",
                        "required": true,
                        "description": "repository",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "ref",
                        "in": "path",
                        "required": true,
                        "description": "tag, version or branch; may contain slashes",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "307": {
                        "description": "redirect to the archive",
                        "headers": {
                            "Location": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "endpoint not available for this forge / flagship instance unavailable for this forge",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "error communicating with the remote server",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/forge/branch/{kind}/{owner}/{repo}/{ref}": {
            "get": {
                "tags": [
                    "Forge"
                ],
                "summary": "The head of a branch on the flagship instance of kind",
                "operationId": "forgeBranch",
                "parameters": [
                    {
                        "name": "kind",
                        "in": "path",
                        "required": true,
                        "description": "forge kind",
                        "schema": {
                            "type": "string",
                            "enum": [
                                "github",
                                "gitlab",
                                "forgejo",
                                "sourcehut",
                                "flakehub"
                            ]
                        }
                    },
                    {
                        "name": "owner",
                        "in": "path",
                        "required": true,
                        "description": "owner or group, nested groups as %2F",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "repo",
                        "in": "path",
                        "required": true,
                        "description": "repository",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "ref",
                        "in": "path",
                        "required": true,
                        "description": "tag, version or branch; may contain slashes",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/Envelope"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/Result"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "endpoint not available for this forge / flagship instance unavailable for this forge",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "error communicating with the remote server",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/forge/branch/host/{host}/{owner}/{repo}/{ref}": {
            "get": {
                "tags": [
                    "Forge"
                ],
                "summary": "The head of a branch on a discovered host",
                "operationId": "forgeBranchByHost",
                "parameters": [
                    {
                        "name": "host",
                        "in": "path",
                        "required": true,
                        "description": "host name",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "owner",
                        "in": "path",
                        "required": true,
                        "description": "owner or group, nested groups as %2F",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "repo",
                        "in": "path",
                        "required": true,
                        "description": "repository",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "ref",
                        "in": "path",
                        "required": true,
                        "description": "tag, version or branch; may contain slashes",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/Envelope"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/Result"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "endpoint not available for this forge / flagship instance unavailable for this forge",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "error communicating with the remote server",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/forge/tarball/branch/{kind}/{owner}/{repo}/{ref}": {
            "get": {
                "tags": [
                    "Forge"
                ],
                "summary": "Redirect to the source archive (branch)",
                "operationId": "forgeTarballBranch",
                "parameters": [
                    {
                        "name": "kind",
                        "in": "path",
                        "required": true,
                        "description": "forge kind",
                        "schema": {
                            "type": "string",
                            "enum": [
                                "github",
                                "gitlab",
                                "forgejo",
                                "sourcehut",
                                "flakehub"
                            ]
                        }
                    },
                    {
                        "name": "owner",
                        "in": "path",
                        "required": true,
                        "description": "owner or group, nested groups as %2F",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "repo",
                        "in": "path",
                        "required": true,
                        "description": "repository",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "ref",
                        "in": "path",
                        "required": true,
                        "description": "tag, version or branch; may contain slashes",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "307": {
                        "description": "redirect to the archive",
                        "headers": {
                            "Location": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "endpoint not available for this forge / flagship instance unavailable for this forge",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "error communicating with the remote server",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/forge/tarball/branch/host/{host}/{owner}/{repo}/{ref}": {
            "get": {
                "tags": [
                    "Forge"
                ],
                "summary": "Redirect to the source archive (branch) on a discovered host",
                "operationId": "forgeTarballBranchByHost",
                "parameters": [
                    {
                        "name": "host",
                        "in": "path",
                        "required": true,
                        "description": "host name",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "owner",
                        "in": "path",
                        "required": true,
                        "description": "owner or group, nested groups as %2F",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "repo",
                        "in": "path",
                        "required": true,
                        "description": "repository",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "ref",
                        "in": "path",
                        "required": true,
                        "description": "tag, version or branch; may contain slashes",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "307": {
                        "description": "redirect to the archive",
                        "headers": {
                            "Location": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "endpoint not available for this forge / flagship instance unavailable for this forge",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "error communicating with the remote server",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/forge/discover/{host}": {
            "get": {
                "tags": [
                    "Forge"
                ],
                "summary": "Which forge serves host, and which strategy decided it",
                "operationId": "forgeDiscover",
                "parameters": [
                    {
                        "name": "host",
                        "in": "path",
                        "required": true,
                        "description": "host name",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/Envelope"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/DiscoverResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "endpoint not available for this forge",
                        "content": {
                            "text/plain": {
                                "schema": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        }
    },
    "components": {
        "schemas": {
            "Envelope": {
                "type": "object",
                "properties": {
                    "status_code": {
                        "type": "integer"
                    },
                    "status": {
                        "type": "string"
                    },
                    "request_id": {
                        "type": "string"
                    },
                    "data": {
                        "type": "object"
                    }
                }
            },
            "RepoInfo": {
                "type": "object",
                "properties": {
                    "full_name": {
                        "type": "string"
                    },
                    "description": {
                        "type": "string"
                    },
                    "default_branch": {
                        "type": "string"
                    },
                    "web_url": {
                        "type": "string"
                    },
                    "stars": {
                        "type": "integer"
                    },
                    "archived": {
                        "type": "boolean"
                    },
                    "license": {
                        "type": "string"
                    }
                }
            },
            "Result": {
                "type": "object",
                "properties": {
                    "kind": {
                        "type": "string",
                        "enum": [
                            "github",
                            "gitlab",
                            "forgejo",
                            "sourcehut",
                            "flakehub"
                        ]
                    },
                    "host": {
                        "type": "string"
                    },
                    "owner": {
                        "type": "string"
                    },
                    "repo": {
                        "type": "string"
                    },
                    "ref": {
                        "type": "string"
                    },
                    "version": {
                        "type": "string"
                    },
                    "tarball_url": {
                        "type": "string"
                    },
                    "repository": {
                        "$ref": "#/components/schemas/RepoInfo"
                    }
                }
            },
            "DiscoverResponse": {
                "type": "object",
                "properties": {
                    "host": {
                        "type": "string"
                    },
                    "kind": {
                        "type": "string"
                    },
                    "strategy": {
                        "type": "string"
                    }
                }
            },
            "HealthResponse": {
                "type": "object",
                "properties": {
                    "ok": {
                        "type": "boolean"
                    },
                    "service": {
                        "type": "string"
                    },
                    "started": {
                        "type": "string"
                    },
                    "now": {
                        "type": "string"
                    }
                }
            },
            "ReadyCheck": {
                "type": "object",
                "properties": {
                    "name": {
                        "type": "string"
                    },
                    "status": {
                        "type": "string"
                    },
                    "error": {
                        "type": "string"
                    }
                }
            },
            "ReadyResponse": {
                "type": "object",
                "properties": {
                    "status": {
                        "type": "string"
                    },
                    "checks": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/ReadyCheck"
                        }
                    },
                    "now": {
                        "type": "string"
                    }
                }
            },
            "ServiceResponse": {
                "type": "object",
                "properties": {
                    "name": {
                        "type": "string"
                    },
                    "started": {
                        "type": "string"
                    },
                    "uptime": {
                        "type": "integer"
                    }
                }
            },
            "BuildInfo": {
                "type": "object",
                "additionalProperties": {
                    "type": "string"
                }
            },
            "ForgeInfo": {
                "type": "object",
                "properties": {
                    "kind": {
                        "type": "string"
                    },
                    "flagship": {
                        "type": "string"
                    },
                    "federated": {
                        "type": "boolean"
                    },
                    "operations": {
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    }
                }
            },
            "ForgesResponse": {
                "type": "object",
                "properties": {
                    "forges": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/ForgeInfo"
                        }
                    },
                    "strategies": {
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "forgeapi",
	Description:      "Uniform read-only access to GitHub, GitLab, Forgejo, SourceHut and FlakeHub",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
