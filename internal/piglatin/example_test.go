package piglatin_test

import (
	"fmt"

	"github.com/LeopoldTal/porcus/internal/piglatin"
)

func ExampleTransformer_Transform() {
	transformer := piglatin.NewDefault()
	fmt.Println(transformer.Transform("Pig latin"))
	fmt.Println(transformer.Transform("à l’œuf"))
	// Output:
	// Igpay atinlay
	// àway œufl’ay
}

func ExampleNew() {
	transformer := piglatin.New("eɪ", "weɪ")
	fmt.Println(transformer.Transform("ə stɹɪŋ"))
	// Output: əweɪ ɪŋstɹeɪ
}
