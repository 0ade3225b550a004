package github

// repo is a partial GitHub repository document with fields we use
type repo struct {
	Name          string   `json:"name"`
	FullName      string   `json:"full_name"`
	Description   string   `json:"description"`
	DefaultBranch string   `json:"default_branch"`
	Stargazers    int      `json:"stargazers_count"`
	Archived      bool     `json:"archived"`
	License       *license `json:"license"`
	HTMLURL       string   `json:"html_url"`
}

type license struct {
	Key    string `json:"key"`
	SPDXID string `json:"spdx_id"`
}

type release struct {
	TagName    string `json:"tag_name"`
	Draft      bool   `json:"draft"`
	Prerelease bool   `json:"prerelease"`
}

type tag struct {
	Name   string `json:"name"`
	Commit commit `json:"commit"`
}

type commit struct {
	SHA string `json:"sha"`
}

type branch struct {
	Name   string `json:"name"`
	Commit commit `json:"commit"`
}

type gitRef struct {
	Ref    string `json:"ref"`
	Object struct {
		SHA  string `json:"sha"`
		Type string `json:"type"`
	} `json:"object"`
}
