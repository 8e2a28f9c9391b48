package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"feedcli/types"
)

func (a *Api) ListPosts(limit, skip int) (*types.PostsResponse, *types.ApiError) {
	serverUrl := fmt.Sprintf("%s/posts?limit=%d&skip=%d", GetApiHost(), limit, skip)

	resp, err := authenticatedClient.Get(serverUrl)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeNetwork, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody types.PostsResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &respBody, nil
}

func (a *Api) ListPostsByUser(userId int) (*types.PostsResponse, *types.ApiError) {
	serverUrl := fmt.Sprintf("%s/posts/user/%d", GetApiHost(), userId)
	return a.getPosts(serverUrl)
}

func (a *Api) ListPostsByTag(tag string) (*types.PostsResponse, *types.ApiError) {
	serverUrl := fmt.Sprintf("%s/posts/tag/%s", GetApiHost(), url.PathEscape(tag))
	return a.getPosts(serverUrl)
}

func (a *Api) SearchPosts(query string) (*types.PostsResponse, *types.ApiError) {
	serverUrl := fmt.Sprintf("%s/posts/search?q=%s", GetApiHost(), url.QueryEscape(query))
	return a.getPosts(serverUrl)
}

func (a *Api) getPosts(serverUrl string) (*types.PostsResponse, *types.ApiError) {
	resp, err := authenticatedClient.Get(serverUrl)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeNetwork, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody types.PostsResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &respBody, nil
}

func (a *Api) GetPost(id int) (*types.Post, *types.ApiError) {
	serverUrl := fmt.Sprintf("%s/posts/%d", GetApiHost(), id)

	resp, err := authenticatedClient.Get(serverUrl)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeNetwork, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var post types.Post
	err = json.NewDecoder(resp.Body).Decode(&post)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &post, nil
}

func (a *Api) GetUser(id int) (*types.User, *types.ApiError) {
	serverUrl := fmt.Sprintf("%s/users/%d", GetApiHost(), id)

	resp, err := authenticatedClient.Get(serverUrl)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeNetwork, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var user types.User
	err = json.NewDecoder(resp.Body).Decode(&user)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &user, nil
}

func (a *Api) ListComments(postId int) (*types.CommentsResponse, *types.ApiError) {
	serverUrl := fmt.Sprintf("%s/comments/post/%d", GetApiHost(), postId)

	resp, err := authenticatedClient.Get(serverUrl)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeNetwork, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody types.CommentsResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &respBody, nil
}

func (a *Api) Login(req types.LoginRequest) (*types.Session, *types.ApiError) {
	serverUrl := GetApiHost() + "/auth/login"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := unauthenticatedClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeNetwork, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		apiErr := HandleApiError(resp, errorBody)
		apiErr.Type = types.ApiErrorTypeAuth
		if apiErr.Msg == "" || apiErr.Msg == resp.Status {
			apiErr.Msg = "Login failed"
		}
		return nil, apiErr
	}

	var session types.Session
	err = json.NewDecoder(resp.Body).Decode(&session)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &session, nil
}
