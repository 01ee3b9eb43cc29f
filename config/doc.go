/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads qerror settings with viper.
//
// A YAML file looks like:
//
//	mode: terse          # or verbose
//	log:
//	  backend: zap       # or logrus
//	  level: info
//	  file: /var/log/app/errors.log
//	mapping:
//	  http:
//	    dynamic_import_failed: 502
//	  grpc:
//	    "11": UNAVAILABLE
//	  http_family:
//	    qrl: 502         # every qrl_* code
//
// Every key can be overridden from the environment with the QERROR_ prefix
// and dots replaced by underscores (QERROR_MODE, QERROR_LOG_LEVEL).
package config
