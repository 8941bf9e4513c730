// Package config loads formkit project configuration.
//
// The configuration lives in formkit.json next to the form definition.
// Every field is optional; missing values take defaults, and a handful of
// deployment settings can be overridden from the environment.
//
// # Configuration File Structure
//
//	{
//	  "definition": "signup.yaml",
//	  "preview": {
//	    "host": "localhost",
//	    "port": 8080,
//	    "watch": true
//	  },
//	  "publish": {
//	    "bucket": "my-forms",
//	    "prefix": "forms/",
//	    "region": "eu-west-1"
//	  },
//	  "classes": {
//	    "invalid": "is-invalid",
//	    "error": "invalid-feedback"
//	  }
//	}
//
// # Environment
//
//	FORMKIT_HOST, FORMKIT_PORT, FORMKIT_SECRET
//	FORMKIT_BUCKET, FORMKIT_REGION, FORMKIT_ENDPOINT
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Preview:", cfg.PreviewAddress())
package config
