// Package db looks up recording metadata in DynamoDB, keyed by the source
// filename of the encoded recording.
package db

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/mirtools/rolltok/model"
)

const tableName = "rolltok-metadata"

func endpoint() string {
	if e := os.Getenv("ROLLTOK_METADATA_ENDPOINT"); e != "" {
		return e
	}
	return "http://localhost:8000"
}

func GetRecordingMetadatas(filenames []string) (map[string]model.RecordingMetadata, error) {
	if len(filenames) > 10 {
		return nil, errors.New("not supposed to pass in more than 10 filenames")
	}

	res := make(map[string]model.RecordingMetadata)
	if len(filenames) == 0 {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		keys = append(keys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(filename)},
		})
	}

	ep := endpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &ep,
	})
	if err != nil {
		return nil, errors.New(fmt.Sprintf("could not create a DynamoDB session: %s", err.Error()))
	}

	client := dynamodb.New(sess)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			tableName: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		return nil, err
	}

	for _, v := range dbres.Responses[tableName] {
		var m model.RecordingMetadata
		if v["Year"] != nil && v["Year"].N != nil {
			year, _ := strconv.ParseUint(*v["Year"].N, 10, 32)
			m.Year = uint(year)
		}
		if v["Artist"] != nil && v["Artist"].S != nil {
			m.Artist = *v["Artist"].S
		}
		if v["Release"] != nil && v["Release"].S != nil {
			m.Release = *v["Release"].S
		}
		if v["Title"] != nil && v["Title"].S != nil {
			m.Title = *v["Title"].S
		}
		if v["PK"] != nil && v["PK"].S != nil {
			res[*v["PK"].S] = m
		}
	}

	return res, nil
}
