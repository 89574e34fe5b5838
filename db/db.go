package db

import (
	"github.com/aws/aws-sdk-go/aws"
	awssession "github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/jsphweid/chordlab/constants"
)

func newClient() (*dynamodb.DynamoDB, error) {
	endpoint := constants.GetDynamoEndpoint()
	sess, err := awssession.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, err
	}
	return dynamodb.New(sess), nil
}

// SaveSession stores a generated chord sequence under its session id so
// the web client can re-fetch an in-flight session.
func SaveSession(id string, chords []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	var list []*dynamodb.AttributeValue
	for _, name := range chords {
		list = append(list, &dynamodb.AttributeValue{S: aws.String(name)})
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(constants.GetSessionsTable()),
		Item: map[string]*dynamodb.AttributeValue{
			"PK":     {S: aws.String(id)},
			"Chords": {L: list},
		},
	}
	_, err = client.PutItem(input)
	return err
}

// GetSession fetches a stored sequence. The bool is false when the id
// is unknown.
func GetSession(id string) ([]string, bool, error) {
	client, err := newClient()
	if err != nil {
		return nil, false, err
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(constants.GetSessionsTable()),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(id)},
		},
	}
	res, err := client.GetItem(input)
	if err != nil {
		return nil, false, err
	}
	if res.Item == nil {
		return nil, false, nil
	}

	var chords []string
	for _, av := range res.Item["Chords"].L {
		chords = append(chords, *av.S)
	}
	return chords, true, nil
}
